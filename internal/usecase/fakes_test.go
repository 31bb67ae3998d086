package usecase

import (
	"context"
	"fmt"
	"time"

	"listed/internal/domain/entity"
	"listed/pkg/errors"
)

// In-memory repository fakes mirroring the Firestore adapters' write
// semantics, so usecase behavior can be asserted without a live backend.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	var out []*entity.User
	for _, user := range r.users {
		if role == "" || user.Role == role {
			out = append(out, user)
		}
	}
	return out, int64(len(out)), nil
}

type fakePitchRepo struct {
	pitches map[string]*entity.FundingPitch
	nextID  int
}

func newFakePitchRepo(pitches ...*entity.FundingPitch) *fakePitchRepo {
	r := &fakePitchRepo{pitches: make(map[string]*entity.FundingPitch)}
	for _, p := range pitches {
		r.pitches[p.ID] = p
	}
	return r
}

func (r *fakePitchRepo) Create(ctx context.Context, pitch *entity.FundingPitch) error {
	if pitch.ID == "" {
		r.nextID++
		pitch.ID = fmt.Sprintf("pitch-%d", r.nextID)
	}
	pitch.CreatedAt = time.Now()
	pitch.UpdatedAt = pitch.CreatedAt
	r.pitches[pitch.ID] = pitch
	return nil
}

func (r *fakePitchRepo) GetByID(ctx context.Context, id string) (*entity.FundingPitch, error) {
	pitch, ok := r.pitches[id]
	if !ok {
		return nil, errors.NotFound("Pitch", nil)
	}
	copied := *pitch
	return &copied, nil
}

func (r *fakePitchRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.FundingPitch, int64, error) {
	var out []*entity.FundingPitch
	for _, pitch := range r.pitches {
		if deleted, ok := filter["isDeletedByAdmin"].(bool); ok && pitch.IsDeletedByAdmin != deleted {
			continue
		}
		if industry, ok := filter["industry"].(string); ok && pitch.Industry != industry {
			continue
		}
		if status, ok := filter["status"].(string); ok && pitch.Status != status {
			continue
		}
		out = append(out, pitch)
	}
	return out, int64(len(out)), nil
}

func (r *fakePitchRepo) ListByCreatorID(ctx context.Context, creatorID string, limit, offset int) ([]*entity.FundingPitch, int64, error) {
	var out []*entity.FundingPitch
	for _, pitch := range r.pitches {
		if pitch.CreatorID == creatorID {
			out = append(out, pitch)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakePitchRepo) Update(ctx context.Context, pitch *entity.FundingPitch) error {
	if _, ok := r.pitches[pitch.ID]; !ok {
		return errors.NotFound("Pitch", nil)
	}
	r.pitches[pitch.ID] = pitch
	return nil
}

func (r *fakePitchRepo) Delete(ctx context.Context, id string) error {
	delete(r.pitches, id)
	return nil
}

func (r *fakePitchRepo) SetStatus(ctx context.Context, id string, status string) error {
	pitch, ok := r.pitches[id]
	if !ok {
		return errors.NotFound("Pitch", nil)
	}
	pitch.Status = status
	pitch.UpdatedAt = time.Now()
	return nil
}

func (r *fakePitchRepo) SoftDelete(ctx context.Context, id string) error {
	pitch, ok := r.pitches[id]
	if !ok {
		return errors.NotFound("Pitch", nil)
	}
	pitch.IsDeletedByAdmin = true
	pitch.Status = entity.PitchStatusClosed
	pitch.UpdatedAt = time.Now()
	return nil
}

func (r *fakePitchRepo) Restore(ctx context.Context, id string) error {
	pitch, ok := r.pitches[id]
	if !ok {
		return errors.NotFound("Pitch", nil)
	}
	pitch.IsDeletedByAdmin = false
	pitch.Status = entity.PitchStatusSeekingFunding
	pitch.UpdatedAt = time.Now()
	return nil
}

func (r *fakePitchRepo) RequestFeature(ctx context.Context, id string, proofDataURI string, requestedAt time.Time) error {
	pitch, ok := r.pitches[id]
	if !ok {
		return errors.NotFound("Pitch", nil)
	}
	pitch.FeatureStatus = entity.FeatureStatusPendingApproval
	pitch.FeatureRequestedAt = &requestedAt
	pitch.FeaturePaymentProofDataURI = proofDataURI
	pitch.UpdatedAt = time.Now()
	return nil
}

func (r *fakePitchRepo) ApproveFeature(ctx context.Context, id string, endsAt time.Time) error {
	pitch, ok := r.pitches[id]
	if !ok {
		return errors.NotFound("Pitch", nil)
	}
	pitch.FeatureStatus = entity.FeatureStatusActive
	pitch.FeatureEndsAt = &endsAt
	pitch.UpdatedAt = time.Now()
	return nil
}

func (r *fakePitchRepo) RejectFeature(ctx context.Context, id string) error {
	pitch, ok := r.pitches[id]
	if !ok {
		return errors.NotFound("Pitch", nil)
	}
	pitch.FeatureStatus = entity.FeatureStatusRejected
	pitch.FeaturePaymentProofDataURI = ""
	pitch.UpdatedAt = time.Now()
	return nil
}

// fakeEngagementRepo applies AddMembers the way the Firestore adapter does:
// all subdocuments plus one counter increment per call, atomically. commits
// counts AddMembers invocations so tests can assert no batch was committed.
type fakeEngagementRepo struct {
	subdocs  map[string]map[string]entity.EngagementMember
	counters map[string]map[string]int
	commits  int
}

func newFakeEngagementRepo() *fakeEngagementRepo {
	return &fakeEngagementRepo{
		subdocs:  make(map[string]map[string]entity.EngagementMember),
		counters: make(map[string]map[string]int),
	}
}

func parentKey(parent entity.EntityRef) string {
	return parent.Collection + "/" + parent.ID
}

func (r *fakeEngagementRepo) IsMember(ctx context.Context, parent entity.EntityRef, kind entity.EngagementKind, userID string) (bool, error) {
	sub := r.subdocs[parentKey(parent)+"/"+kind.SubcollectionName()]
	_, ok := sub[userID]
	return ok, nil
}

func (r *fakeEngagementRepo) AddMembers(ctx context.Context, parent entity.EntityRef, kind entity.EngagementKind, members []entity.EngagementMember) error {
	key := parentKey(parent) + "/" + kind.SubcollectionName()
	if r.subdocs[key] == nil {
		r.subdocs[key] = make(map[string]entity.EngagementMember)
	}
	for _, member := range members {
		r.subdocs[key][member.UserID] = member
	}

	if r.counters[parentKey(parent)] == nil {
		r.counters[parentKey(parent)] = make(map[string]int)
	}
	r.counters[parentKey(parent)][kind.CounterField()] += len(members)
	r.commits++
	return nil
}

func (r *fakeEngagementRepo) ListMembers(ctx context.Context, parent entity.EntityRef, kind entity.EngagementKind, limit, offset int) ([]*entity.EngagementMember, int64, error) {
	sub := r.subdocs[parentKey(parent)+"/"+kind.SubcollectionName()]
	var out []*entity.EngagementMember
	for _, member := range sub {
		copied := member
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *fakeEngagementRepo) counter(parent entity.EntityRef, kind entity.EngagementKind) int {
	return r.counters[parentKey(parent)][kind.CounterField()]
}

func (r *fakeEngagementRepo) memberCount(parent entity.EntityRef, kind entity.EngagementKind) int {
	return len(r.subdocs[parentKey(parent)+"/"+kind.SubcollectionName()])
}

type fakeComplaintRepo struct {
	complaints map[string]*entity.Complaint
	nextID     int
}

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{complaints: make(map[string]*entity.Complaint)}
}

func (r *fakeComplaintRepo) Create(ctx context.Context, complaint *entity.Complaint) error {
	if complaint.ID == "" {
		r.nextID++
		complaint.ID = fmt.Sprintf("complaint-%d", r.nextID)
	}
	complaint.CreatedAt = time.Now()
	complaint.UpdatedAt = complaint.CreatedAt
	r.complaints[complaint.ID] = complaint
	return nil
}

func (r *fakeComplaintRepo) GetByID(ctx context.Context, id string) (*entity.Complaint, error) {
	complaint, ok := r.complaints[id]
	if !ok {
		return nil, errors.NotFound("Complaint", nil)
	}
	copied := *complaint
	copied.AdminNotes = append([]entity.AdminNote(nil), complaint.AdminNotes...)
	return &copied, nil
}

func (r *fakeComplaintRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Complaint, int64, error) {
	var out []*entity.Complaint
	for _, complaint := range r.complaints {
		if status == "" || complaint.Status == status {
			out = append(out, complaint)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeComplaintRepo) ListByComplainantUID(ctx context.Context, uid string, limit, offset int) ([]*entity.Complaint, int64, error) {
	var out []*entity.Complaint
	for _, complaint := range r.complaints {
		if complaint.ComplainantUID == uid {
			out = append(out, complaint)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeComplaintRepo) SetStatus(ctx context.Context, id string, status string, note *entity.AdminNote) error {
	complaint, ok := r.complaints[id]
	if !ok {
		return errors.NotFound("Complaint", nil)
	}
	complaint.Status = status
	if note != nil {
		complaint.AdminNotes = append(complaint.AdminNotes, *note)
	}
	complaint.UpdatedAt = time.Now()
	return nil
}

type fakeSalesOfferRepo struct {
	offers map[string]*entity.UserSalesOffer
	nextID int
}

func newFakeSalesOfferRepo() *fakeSalesOfferRepo {
	return &fakeSalesOfferRepo{offers: make(map[string]*entity.UserSalesOffer)}
}

func (r *fakeSalesOfferRepo) Create(ctx context.Context, offer *entity.UserSalesOffer) error {
	if offer.ID == "" {
		r.nextID++
		offer.ID = fmt.Sprintf("offer-%d", r.nextID)
	}
	offer.CreatedAt = time.Now()
	offer.UpdatedAt = offer.CreatedAt
	r.offers[offer.ID] = offer
	return nil
}

func (r *fakeSalesOfferRepo) GetByID(ctx context.Context, id string) (*entity.UserSalesOffer, error) {
	offer, ok := r.offers[id]
	if !ok {
		return nil, errors.NotFound("Offer", nil)
	}
	copied := *offer
	return &copied, nil
}

func (r *fakeSalesOfferRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.UserSalesOffer, int64, error) {
	var out []*entity.UserSalesOffer
	for _, offer := range r.offers {
		if status, ok := filter["status"].(string); ok && offer.Status != status {
			continue
		}
		out = append(out, offer)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSalesOfferRepo) ListByCreatorID(ctx context.Context, creatorID string, status string, limit, offset int) ([]*entity.UserSalesOffer, int64, error) {
	var out []*entity.UserSalesOffer
	for _, offer := range r.offers {
		if offer.CreatorID != creatorID {
			continue
		}
		if status != "" && offer.Status != status {
			continue
		}
		out = append(out, offer)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSalesOfferRepo) Update(ctx context.Context, offer *entity.UserSalesOffer) error {
	if _, ok := r.offers[offer.ID]; !ok {
		return errors.NotFound("Offer", nil)
	}
	r.offers[offer.ID] = offer
	return nil
}

func (r *fakeSalesOfferRepo) Delete(ctx context.Context, id string) error {
	delete(r.offers, id)
	return nil
}

func (r *fakeSalesOfferRepo) SetStatus(ctx context.Context, id string, status string) error {
	offer, ok := r.offers[id]
	if !ok {
		return errors.NotFound("Offer", nil)
	}
	offer.Status = status
	offer.UpdatedAt = time.Now()
	return nil
}

func (r *fakeSalesOfferRepo) CountActiveByCreatorID(ctx context.Context, creatorID string) (int64, error) {
	var count int64
	for _, offer := range r.offers {
		if offer.CreatorID == creatorID && offer.Status == entity.OfferStatusActive {
			count++
		}
	}
	return count, nil
}

type fakePlatformOfferRepo struct {
	offers map[string]*entity.PlatformOffer
	nextID int
}

func newFakePlatformOfferRepo() *fakePlatformOfferRepo {
	return &fakePlatformOfferRepo{offers: make(map[string]*entity.PlatformOffer)}
}

func (r *fakePlatformOfferRepo) Create(ctx context.Context, offer *entity.PlatformOffer) error {
	if offer.ID == "" {
		r.nextID++
		offer.ID = fmt.Sprintf("platform-offer-%d", r.nextID)
	}
	r.offers[offer.ID] = offer
	return nil
}

func (r *fakePlatformOfferRepo) GetByID(ctx context.Context, id string) (*entity.PlatformOffer, error) {
	offer, ok := r.offers[id]
	if !ok {
		return nil, errors.NotFound("Offer", nil)
	}
	copied := *offer
	return &copied, nil
}

func (r *fakePlatformOfferRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.PlatformOffer, int64, error) {
	var out []*entity.PlatformOffer
	for _, offer := range r.offers {
		out = append(out, offer)
	}
	return out, int64(len(out)), nil
}

func (r *fakePlatformOfferRepo) Update(ctx context.Context, offer *entity.PlatformOffer) error {
	r.offers[offer.ID] = offer
	return nil
}

func (r *fakePlatformOfferRepo) Delete(ctx context.Context, id string) error {
	delete(r.offers, id)
	return nil
}

func (r *fakePlatformOfferRepo) SetStatus(ctx context.Context, id string, status string) error {
	offer, ok := r.offers[id]
	if !ok {
		return errors.NotFound("Offer", nil)
	}
	offer.Status = status
	return nil
}
