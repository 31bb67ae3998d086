package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listed/internal/domain/entity"
	"listed/pkg/errors"
)

func testComplaintSetup(users ...*entity.User) (*ComplaintUseCase, *fakeComplaintRepo) {
	repo := newFakeComplaintRepo()
	uc := NewComplaintUseCase(repo, newFakeUserRepo(users...))
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return uc, repo
}

func TestComplaintLifecycleWithNotes(t *testing.T) {
	uc, _ := testComplaintSetup(founder("f1"), admin("a1"))
	ctx := context.Background()

	complaint, err := uc.CreateComplaint(ctx, "f1", CreateComplaintInput{
		ComplaintType: entity.ComplaintTypePlatformIssue,
		Subject:       "Broken upload",
		Description:   "Pitch images fail to upload on slow connections.",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintStatusPending, complaint.Status)
	assert.Empty(t, complaint.AdminNotes)

	complaint, err = uc.UpdateComplaint(ctx, complaint.ID, "a1", entity.ComplaintStatusInProgress, "reviewing")
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintStatusInProgress, complaint.Status)
	require.Len(t, complaint.AdminNotes, 1)
	assert.Equal(t, "reviewing", complaint.AdminNotes[0].Note)
	assert.Equal(t, "a1", complaint.AdminNotes[0].AdminID)

	// A status-only update leaves the note log unchanged.
	complaint, err = uc.UpdateComplaint(ctx, complaint.ID, "a1", entity.ComplaintStatusResolved, "")
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintStatusResolved, complaint.Status)
	assert.Len(t, complaint.AdminNotes, 1)
}

func TestComplaintTransitionsAreUnconstrained(t *testing.T) {
	uc, _ := testComplaintSetup(founder("f1"), admin("a1"))
	ctx := context.Background()

	complaint, err := uc.CreateComplaint(ctx, "f1", CreateComplaintInput{
		ComplaintType: entity.ComplaintTypeOther,
		Subject:       "Misc",
		Description:   "Something else entirely.",
	})
	require.NoError(t, err)

	// Closed straight from Pending, then reopened: no transition table.
	complaint, err = uc.UpdateComplaint(ctx, complaint.ID, "a1", entity.ComplaintStatusClosed, "")
	require.NoError(t, err)
	complaint, err = uc.UpdateComplaint(ctx, complaint.ID, "a1", entity.ComplaintStatusPending, "reopened")
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintStatusPending, complaint.Status)
	assert.Len(t, complaint.AdminNotes, 1)
}

func TestComplaintAgainstUserRequiresTarget(t *testing.T) {
	uc, _ := testComplaintSetup(founder("f1"))

	_, err := uc.CreateComplaint(context.Background(), "f1", CreateComplaintInput{
		ComplaintType: entity.ComplaintTypeAgainstUser,
		Subject:       "Spam",
		Description:   "This user keeps spamming my inbox.",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	complaint, err := uc.CreateComplaint(context.Background(), "f1", CreateComplaintInput{
		ComplaintType:        entity.ComplaintTypeAgainstUser,
		TargetUserIdentifier: "spammer@example.com",
		Subject:              "Spam",
		Description:          "This user keeps spamming my inbox.",
	})
	require.NoError(t, err)
	assert.Equal(t, "spammer@example.com", complaint.TargetUserIdentifier)
}

func TestGetComplaintVisibility(t *testing.T) {
	uc, _ := testComplaintSetup(founder("f1"), founder("f2"), admin("a1"))
	ctx := context.Background()

	complaint, err := uc.CreateComplaint(ctx, "f1", CreateComplaintInput{
		ComplaintType: entity.ComplaintTypePlatformIssue,
		Subject:       "Bug",
		Description:   "Details of the bug being reported.",
	})
	require.NoError(t, err)

	_, err = uc.GetComplaint(ctx, complaint.ID, "f1", false)
	assert.NoError(t, err)

	_, err = uc.GetComplaint(ctx, complaint.ID, "f2", false)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.GetComplaint(ctx, complaint.ID, "a1", true)
	assert.NoError(t, err)
}
