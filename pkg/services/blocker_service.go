package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/frankbria/codeframe/ent"
	"github.com/frankbria/codeframe/ent/blocker"
	"github.com/frankbria/codeframe/pkg/models"
)

// resumeMetadataExpr parses discovery resume metadata stashed in a
// blocker's question text.
var resumeMetadataExpr = regexp.MustCompile(`session:(\S+)\s+progress:(\d+)/(\d+)`)

// BlockerService persists blockers
type BlockerService struct {
	client *ent.Client
}

// NewBlockerService creates a new BlockerService
func NewBlockerService(client *ent.Client) *BlockerService {
	return &BlockerService{client: client}
}

// CreateBlocker persists a new blocker and returns it with id and
// timestamps set.
func (s *BlockerService) CreateBlocker(httpCtx context.Context, req models.CreateBlockerRequest) (*ent.Blocker, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.Question == "" {
		return nil, NewValidationError("question", "required")
	}
	kind := blocker.Kind(req.Kind)
	if err := blocker.KindValidator(kind); err != nil {
		return nil, NewValidationError("kind", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Blocker.Create().
		SetID(uuid.New().String()).
		SetProjectID(req.ProjectID).
		SetKind(kind).
		SetQuestion(req.Question)
	if req.TaskID != "" {
		builder.SetTaskID(req.TaskID)
	}
	if req.SessionID != "" {
		builder.SetSessionID(req.SessionID)
	}

	b, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create blocker: %w", err)
	}
	return b, nil
}

// GetBlocker fetches a blocker by id.
func (s *BlockerService) GetBlocker(ctx context.Context, id string) (*ent.Blocker, error) {
	b, err := s.client.Blocker.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: blocker %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get blocker: %w", err)
	}
	return b, nil
}

// AnswerBlocker stamps answered_at and stores the answer text.
// Answering an already-answered blocker is idempotent: the original
// answer is kept and returned.
func (s *BlockerService) AnswerBlocker(httpCtx context.Context, id, answer string) (*ent.Blocker, error) {
	if answer == "" {
		return nil, NewValidationError("answer", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	b, err := s.GetBlocker(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.AnsweredAt != nil {
		return b, nil
	}

	updated, err := b.Update().
		SetAnswer(answer).
		SetAnsweredAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to answer blocker: %w", err)
	}
	return updated, nil
}

// ListBlockersByProject returns blockers for a project sorted by
// creation time, narrowed by the filter.
func (s *BlockerService) ListBlockersByProject(ctx context.Context, projectID string, filter models.BlockerFilter) ([]*ent.Blocker, error) {
	q := s.client.Blocker.Query().Where(blocker.ProjectID(projectID))

	switch filter.State {
	case "":
	case "pending":
		q = q.Where(blocker.AnsweredAtIsNil())
	case "answered":
		q = q.Where(blocker.AnsweredAtNotNil())
	default:
		return nil, NewValidationError("state", "must be pending or answered")
	}
	if filter.Kind != "" {
		kind := blocker.Kind(filter.Kind)
		if err := blocker.KindValidator(kind); err != nil {
			return nil, NewValidationError("kind", err.Error())
		}
		q = q.Where(blocker.KindEQ(kind))
	}

	blockers, err := q.Order(ent.Asc(blocker.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blockers: %w", err)
	}
	return blockers, nil
}

// ResumeMetadata is the discovery-session state parsed out of a
// blocker's question text.
type ResumeMetadata struct {
	SessionID string
	Current   int
	Total     int
}

// ParseResumeMetadata extracts `session:<id> progress:<n>/<m>` from a
// question; the second return is false when the question carries no
// resume metadata.
func ParseResumeMetadata(question string) (ResumeMetadata, bool) {
	m := resumeMetadataExpr.FindStringSubmatch(question)
	if m == nil {
		return ResumeMetadata{}, false
	}
	current, _ := strconv.Atoi(m[2])
	total, _ := strconv.Atoi(m[3])
	return ResumeMetadata{SessionID: m[1], Current: current, Total: total}, true
}
