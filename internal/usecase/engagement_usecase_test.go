package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listed/internal/domain/entity"
)

func testEngagementSetup(users ...*entity.User) (*EngagementUseCase, *fakeEngagementRepo) {
	repo := newFakeEngagementRepo()
	uc := NewEngagementUseCase(repo, newFakeUserRepo(users...))
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return uc, repo
}

func investor(id string) *entity.User {
	return &entity.User{ID: id, Name: "User " + id, Role: entity.RoleInvestor, AvatarSeed: id}
}

func TestRecordEngagementIsIdempotent(t *testing.T) {
	uc, repo := testEngagementSetup(investor("u1"))
	parent := entity.EntityRef{Collection: CollectionFundingPitches, ID: "p1"}

	recorded, err := uc.RecordEngagement(context.Background(), parent, "u1", entity.EngagementInterest)
	require.NoError(t, err)
	assert.True(t, recorded)

	recorded, err = uc.RecordEngagement(context.Background(), parent, "u1", entity.EngagementInterest)
	require.NoError(t, err)
	assert.False(t, recorded)

	assert.Equal(t, 1, repo.memberCount(parent, entity.EngagementInterest))
	assert.Equal(t, 1, repo.counter(parent, entity.EngagementInterest))
	assert.Equal(t, 1, repo.commits)
}

func TestInterestAndDisinterestAreMutuallyExclusive(t *testing.T) {
	uc, repo := testEngagementSetup(investor("u1"))
	parent := entity.EntityRef{Collection: CollectionFundingPitches, ID: "p1"}

	recorded, err := uc.RecordEngagement(context.Background(), parent, "u1", entity.EngagementInterest)
	require.NoError(t, err)
	assert.True(t, recorded)

	recorded, err = uc.RecordEngagement(context.Background(), parent, "u1", entity.EngagementDisinterest)
	require.NoError(t, err)
	assert.False(t, recorded)

	assert.Equal(t, 1, repo.memberCount(parent, entity.EngagementInterest))
	assert.Equal(t, 0, repo.memberCount(parent, entity.EngagementDisinterest))
	assert.Equal(t, 1, repo.counter(parent, entity.EngagementInterest))
	assert.Equal(t, 0, repo.counter(parent, entity.EngagementDisinterest))
}

func TestDisinterestBlocksLaterInterest(t *testing.T) {
	uc, repo := testEngagementSetup(investor("u1"))
	parent := entity.EntityRef{Collection: CollectionPlatformOffers, ID: "o1"}

	recorded, err := uc.RecordEngagement(context.Background(), parent, "u1", entity.EngagementDisinterest)
	require.NoError(t, err)
	assert.True(t, recorded)

	recorded, err = uc.RecordEngagement(context.Background(), parent, "u1", entity.EngagementInterest)
	require.NoError(t, err)
	assert.False(t, recorded)

	assert.Equal(t, 0, repo.memberCount(parent, entity.EngagementInterest))
	assert.Equal(t, 1, repo.memberCount(parent, entity.EngagementDisinterest))
}

func TestViewDoesNotBlockInterest(t *testing.T) {
	uc, repo := testEngagementSetup(investor("u1"))
	parent := entity.EntityRef{Collection: CollectionFundingPitches, ID: "p1"}

	recorded, err := uc.RecordEngagement(context.Background(), parent, "u1", entity.EngagementView)
	require.NoError(t, err)
	assert.True(t, recorded)

	recorded, err = uc.RecordEngagement(context.Background(), parent, "u1", entity.EngagementInterest)
	require.NoError(t, err)
	assert.True(t, recorded)

	assert.Equal(t, 1, repo.counter(parent, entity.EngagementView))
	assert.Equal(t, 1, repo.counter(parent, entity.EngagementInterest))
}

func TestRecordEngagementRejectsUnknownTarget(t *testing.T) {
	uc, _ := testEngagementSetup(investor("u1"))
	parent := entity.EntityRef{Collection: "users", ID: "p1"}

	_, err := uc.RecordEngagement(context.Background(), parent, "u1", entity.EngagementView)
	assert.Error(t, err)
}

func TestBulkMatchesIndividualRecording(t *testing.T) {
	users := []*entity.User{investor("u1"), investor("u2"), investor("u3")}
	parent := entity.EntityRef{Collection: CollectionSalesOffers, ID: "o1"}

	bulkUC, bulkRepo := testEngagementSetup(users...)
	recorded, err := bulkUC.RecordEngagementBulk(context.Background(), parent, []string{"u1", "u2", "u3"}, entity.EngagementPeerInterest)
	require.NoError(t, err)
	assert.Equal(t, 3, recorded)

	singleUC, singleRepo := testEngagementSetup(users...)
	for _, id := range []string{"u1", "u2", "u3"} {
		_, err := singleUC.RecordEngagement(context.Background(), parent, id, entity.EngagementPeerInterest)
		require.NoError(t, err)
	}

	assert.Equal(t, singleRepo.counter(parent, entity.EngagementPeerInterest), bulkRepo.counter(parent, entity.EngagementPeerInterest))
	assert.Equal(t, singleRepo.memberCount(parent, entity.EngagementPeerInterest), bulkRepo.memberCount(parent, entity.EngagementPeerInterest))
	// One batch for the whole bulk call.
	assert.Equal(t, 1, bulkRepo.commits)
}

func TestBulkSkipsExistingMembersAndDuplicates(t *testing.T) {
	uc, repo := testEngagementSetup(investor("u1"), investor("u2"))
	parent := entity.EntityRef{Collection: CollectionFundingPitches, ID: "p1"}

	_, err := uc.RecordEngagement(context.Background(), parent, "u1", entity.EngagementView)
	require.NoError(t, err)

	recorded, err := uc.RecordEngagementBulk(context.Background(), parent, []string{"u1", "u2", "u2"}, entity.EngagementView)
	require.NoError(t, err)
	assert.Equal(t, 1, recorded)
	assert.Equal(t, 2, repo.counter(parent, entity.EngagementView))
}

func TestBulkWithNoEligibleUsersCommitsNothing(t *testing.T) {
	uc, repo := testEngagementSetup(investor("u1"))
	parent := entity.EntityRef{Collection: CollectionFundingPitches, ID: "p1"}

	_, err := uc.RecordEngagement(context.Background(), parent, "u1", entity.EngagementView)
	require.NoError(t, err)
	commitsBefore := repo.commits

	recorded, err := uc.RecordEngagementBulk(context.Background(), parent, []string{"u1"}, entity.EngagementView)
	require.NoError(t, err)
	assert.Equal(t, 0, recorded)
	assert.Equal(t, commitsBefore, repo.commits)

	recorded, err = uc.RecordEngagementBulk(context.Background(), parent, nil, entity.EngagementView)
	require.NoError(t, err)
	assert.Equal(t, 0, recorded)
	assert.Equal(t, commitsBefore, repo.commits)
}

func TestBulkSkipsUnknownUsersWithoutFailing(t *testing.T) {
	uc, repo := testEngagementSetup(investor("u1"))
	parent := entity.EntityRef{Collection: CollectionFundingPitches, ID: "p1"}

	recorded, err := uc.RecordEngagementBulk(context.Background(), parent, []string{"u1", "ghost"}, entity.EngagementView)
	require.NoError(t, err)
	assert.Equal(t, 1, recorded)
	assert.Equal(t, 1, repo.counter(parent, entity.EngagementView))
}

// Full walk-through: one viewer, repeated interest, one disinterest from a
// second user.
func TestEngagementCounterScenario(t *testing.T) {
	uc, repo := testEngagementSetup(investor("userA"), investor("userB"))
	parent := entity.EntityRef{Collection: CollectionFundingPitches, ID: "p1"}
	ctx := context.Background()

	recorded, err := uc.RecordEngagement(ctx, parent, "userA", entity.EngagementView)
	require.NoError(t, err)
	assert.True(t, recorded)

	recorded, err = uc.RecordEngagement(ctx, parent, "userA", entity.EngagementInterest)
	require.NoError(t, err)
	assert.True(t, recorded)

	recorded, err = uc.RecordEngagement(ctx, parent, "userA", entity.EngagementInterest)
	require.NoError(t, err)
	assert.False(t, recorded)

	recorded, err = uc.RecordEngagement(ctx, parent, "userB", entity.EngagementDisinterest)
	require.NoError(t, err)
	assert.True(t, recorded)

	assert.Equal(t, 1, repo.counter(parent, entity.EngagementView))
	assert.Equal(t, 1, repo.counter(parent, entity.EngagementInterest))
	assert.Equal(t, 1, repo.counter(parent, entity.EngagementDisinterest))
}
