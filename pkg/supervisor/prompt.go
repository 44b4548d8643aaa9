package supervisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/frankbria/codeframe/ent"
	"github.com/frankbria/codeframe/ent/memory"
	"github.com/frankbria/codeframe/pkg/graph"
	"github.com/frankbria/codeframe/pkg/llm"
)

// Prompt context bounds. HOT items are always included; WARM items are
// capped and truncated so the context stays bounded.
const (
	maxWarmItems      = 20
	maxWarmItemLength = 500
)

// buildPrompt assembles the worker request for one task dispatch.
func (s *Supervisor) buildPrompt(ctx context.Context, projectID string, t *ent.Task, systemPrompt string) (llm.Request, error) {
	var b strings.Builder

	hot, err := s.memories.GetByCategory(ctx, projectID, memory.CategoryHot)
	if err != nil {
		return llm.Request{}, fmt.Errorf("loading hot memories: %w", err)
	}
	warm, err := s.memories.GetByCategory(ctx, projectID, memory.CategoryWarm)
	if err != nil {
		return llm.Request{}, fmt.Errorf("loading warm memories: %w", err)
	}

	if len(hot) > 0 || len(warm) > 0 {
		b.WriteString("Project context:\n")
		for _, m := range hot {
			fmt.Fprintf(&b, "- %s: %s\n", m.Key, m.Content)
		}
		if len(warm) > maxWarmItems {
			warm = warm[:maxWarmItems]
		}
		for _, m := range warm {
			fmt.Fprintf(&b, "- %s: %s\n", m.Key, truncate(m.Content, maxWarmItemLength))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Task %s: %s\n", t.TaskNumber, t.Title)
	if t.Description != "" {
		b.WriteString(t.Description)
		b.WriteString("\n")
	}
	if deps := graph.ParseDependsOn(t.DependsOn); len(deps) > 0 {
		fmt.Fprintf(&b, "Depends on completed tasks: %s\n", strings.Join(deps, ", "))
	}
	if len(t.InterventionContext) > 0 {
		b.WriteString("\nNotes from the previous attempt:\n")
		if instr, ok := t.InterventionContext["instruction"].(string); ok && instr != "" {
			fmt.Fprintf(&b, "- %s\n", instr)
		}
		if answer, ok := t.InterventionContext["blocker_answer"].(string); ok && answer != "" {
			fmt.Fprintf(&b, "- Blocker answer: %s\n", answer)
		}
		if files, ok := t.InterventionContext["known_files"].([]any); ok && len(files) > 0 {
			names := make([]string, 0, len(files))
			for _, f := range files {
				if s, ok := f.(string); ok {
					names = append(names, s)
				}
			}
			fmt.Fprintf(&b, "- Known project files: %s\n", strings.Join(names, ", "))
		}
	}

	return llm.Request{
		System:   systemPrompt,
		Messages: []llm.Message{{Role: "user", Content: b.String()}},
		Purpose:  "task_execution",
	}, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

// filesChangedMarker prefixes the worker's final file listing. The
// system prompt instructs agents to report touched files this way.
const filesChangedMarker = "FILES_CHANGED:"

// parseFilesChanged extracts the reported files-changed set from a
// worker response, empty when the marker is absent.
func parseFilesChanged(content string) []string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, filesChangedMarker) {
			continue
		}
		var files []string
		for _, f := range strings.Split(strings.TrimPrefix(line, filesChangedMarker), ",") {
			if f = strings.TrimSpace(f); f != "" {
				files = append(files, f)
			}
		}
		return files
	}
	return nil
}
