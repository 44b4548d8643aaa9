// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/frankbria/codeframe/ent/blocker"
	"github.com/frankbria/codeframe/ent/issue"
	"github.com/frankbria/codeframe/ent/memory"
	"github.com/frankbria/codeframe/ent/project"
	"github.com/frankbria/codeframe/ent/schema"
	"github.com/frankbria/codeframe/ent/task"
	"github.com/frankbria/codeframe/ent/tokenusage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	blockerFields := schema.Blocker{}.Fields()
	_ = blockerFields
	// blockerDescCreatedAt is the schema descriptor for created_at field.
	blockerDescCreatedAt := blockerFields[8].Descriptor()
	// blocker.DefaultCreatedAt holds the default value on creation for the created_at field.
	blocker.DefaultCreatedAt = blockerDescCreatedAt.Default.(func() time.Time)
	issueFields := schema.Issue{}.Fields()
	_ = issueFields
	// issueDescPriority is the schema descriptor for priority field.
	issueDescPriority := issueFields[5].Descriptor()
	// issue.DefaultPriority holds the default value on creation for the priority field.
	issue.DefaultPriority = issueDescPriority.Default.(int)
	// issueDescCreatedAt is the schema descriptor for created_at field.
	issueDescCreatedAt := issueFields[7].Descriptor()
	// issue.DefaultCreatedAt holds the default value on creation for the created_at field.
	issue.DefaultCreatedAt = issueDescCreatedAt.Default.(func() time.Time)
	// issueDescUpdatedAt is the schema descriptor for updated_at field.
	issueDescUpdatedAt := issueFields[8].Descriptor()
	// issue.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	issue.DefaultUpdatedAt = issueDescUpdatedAt.Default.(func() time.Time)
	// issue.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	issue.UpdateDefaultUpdatedAt = issueDescUpdatedAt.UpdateDefault.(func() time.Time)
	memoryFields := schema.Memory{}.Fields()
	_ = memoryFields
	// memoryDescCreatedAt is the schema descriptor for created_at field.
	memoryDescCreatedAt := memoryFields[5].Descriptor()
	// memory.DefaultCreatedAt holds the default value on creation for the created_at field.
	memory.DefaultCreatedAt = memoryDescCreatedAt.Default.(func() time.Time)
	// memoryDescUpdatedAt is the schema descriptor for updated_at field.
	memoryDescUpdatedAt := memoryFields[6].Descriptor()
	// memory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	memory.DefaultUpdatedAt = memoryDescUpdatedAt.Default.(func() time.Time)
	// memory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	memory.UpdateDefaultUpdatedAt = memoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[5].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[6].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCanParallelize is the schema descriptor for can_parallelize field.
	taskDescCanParallelize := taskFields[8].Descriptor()
	// task.DefaultCanParallelize holds the default value on creation for the can_parallelize field.
	task.DefaultCanParallelize = taskDescCanParallelize.Default.(bool)
	// taskDescPriority is the schema descriptor for priority field.
	taskDescPriority := taskFields[9].Descriptor()
	// task.DefaultPriority holds the default value on creation for the priority field.
	task.DefaultPriority = taskDescPriority.Default.(int)
	// taskDescEstimatedHours is the schema descriptor for estimated_hours field.
	taskDescEstimatedHours := taskFields[10].Descriptor()
	// task.DefaultEstimatedHours holds the default value on creation for the estimated_hours field.
	task.DefaultEstimatedHours = taskDescEstimatedHours.Default.(float64)
	// taskDescComplexityScore is the schema descriptor for complexity_score field.
	taskDescComplexityScore := taskFields[11].Descriptor()
	// task.DefaultComplexityScore holds the default value on creation for the complexity_score field.
	task.DefaultComplexityScore = taskDescComplexityScore.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[17].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[18].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	tokenusageFields := schema.TokenUsage{}.Fields()
	_ = tokenusageFields
	// tokenusageDescCreatedAt is the schema descriptor for created_at field.
	tokenusageDescCreatedAt := tokenusageFields[9].Descriptor()
	// tokenusage.DefaultCreatedAt holds the default value on creation for the created_at field.
	tokenusage.DefaultCreatedAt = tokenusageDescCreatedAt.Default.(func() time.Time)
}
