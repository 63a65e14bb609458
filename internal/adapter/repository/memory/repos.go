package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donorvault/donorvault-backend/internal/domain"
)

type positionKey struct {
	depositor uuid.UUID
	vaultID   uuid.UUID
}

type claimKey struct {
	distributionID uuid.UUID
	depositor      uuid.UUID
}

type voteKey struct {
	checkpointID uuid.UUID
	supporter    uuid.UUID
}

// VaultRepository implements domain.VaultRepository.
type VaultRepository struct {
	store  *Store
	mu     sync.RWMutex
	vaults map[uuid.UUID]*domain.Vault
}

func copyVault(v *domain.Vault) *domain.Vault {
	c := *v
	if v.ActiveAdapterID != nil {
		id := *v.ActiveAdapterID
		c.ActiveAdapterID = &id
	}
	if v.EmergencyActivatedAt != nil {
		t := *v.EmergencyActivatedAt
		c.EmergencyActivatedAt = &t
	}
	return &c
}

func (r *VaultRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Vault, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vaults[id]
	if !ok {
		return nil, domain.Ef(domain.KindNotFound, "vault %s not found", id)
	}
	return copyVault(v), nil
}

func (r *VaultRepository) Create(_ context.Context, v *domain.Vault) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.vaults == nil {
		r.vaults = make(map[uuid.UUID]*domain.Vault)
	}
	if _, exists := r.vaults[v.ID]; exists {
		return domain.Ef(domain.KindState, "vault %s already exists", v.ID)
	}
	r.vaults[v.ID] = copyVault(v)
	return nil
}

func (r *VaultRepository) Update(_ context.Context, v *domain.Vault) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vaults[v.ID]; !ok {
		return domain.Ef(domain.KindNotFound, "vault %s not found", v.ID)
	}
	r.vaults[v.ID] = copyVault(v)
	return nil
}

func (r *VaultRepository) List(_ context.Context) ([]*domain.Vault, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Vault, 0, len(r.vaults))
	for _, v := range r.vaults {
		out = append(out, copyVault(v))
	}
	return out, nil
}

// PositionRepository implements domain.PositionRepository.
type PositionRepository struct {
	store     *Store
	mu        sync.RWMutex
	positions map[positionKey]*domain.Position
	snapshots []domain.ShareSnapshot
}

func copyPosition(p *domain.Position) *domain.Position {
	c := *p
	c.LockTranches = append([]domain.LockTranche(nil), p.LockTranches...)
	c.Allowances = make(map[uuid.UUID]decimal.Decimal, len(p.Allowances))
	for k, v := range p.Allowances {
		c.Allowances[k] = v
	}
	return &c
}

func (r *PositionRepository) Get(_ context.Context, depositor, vaultID uuid.UUID) (*domain.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.positions[positionKey{depositor, vaultID}]
	if !ok {
		return domain.NewPosition(depositor, vaultID), nil
	}
	return copyPosition(p), nil
}

func (r *PositionRepository) Save(_ context.Context, p *domain.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.positions == nil {
		r.positions = make(map[positionKey]*domain.Position)
	}
	r.positions[positionKey{p.Depositor, p.VaultID}] = copyPosition(p)
	return nil
}

func (r *PositionRepository) AppendSnapshot(_ context.Context, snap *domain.ShareSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, *snap)
	return nil
}

func (r *PositionRepository) SharesAt(_ context.Context, depositor, vaultID uuid.UUID, seq int64) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	shares := decimal.Zero
	bestSeq := int64(-1)
	for _, snap := range r.snapshots {
		if snap.Depositor == depositor && snap.VaultID == vaultID && snap.Seq <= seq && snap.Seq > bestSeq {
			bestSeq = snap.Seq
			shares = snap.Shares
		}
	}
	return shares, nil
}

func (r *PositionRepository) LiftCampaignRestriction(_ context.Context, campaignID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.positions {
		p.LiftCampaignRestriction(campaignID)
	}
	return nil
}

// PreferenceRepository implements domain.PreferenceRepository.
type PreferenceRepository struct {
	store *Store
	mu    sync.RWMutex
	prefs map[positionKey]*domain.PayoutPreference
}

func (r *PreferenceRepository) Get(_ context.Context, depositor, vaultID uuid.UUID) (*domain.PayoutPreference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.prefs[positionKey{depositor, vaultID}]
	if !ok {
		return nil, domain.E(domain.KindNotFound, "preference not set")
	}
	c := *p
	return &c, nil
}

func (r *PreferenceRepository) Save(_ context.Context, p *domain.PayoutPreference) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.prefs == nil {
		r.prefs = make(map[positionKey]*domain.PayoutPreference)
	}
	c := *p
	r.prefs[positionKey{p.Depositor, p.VaultID}] = &c
	return nil
}

// CampaignRepository implements domain.CampaignRepository.
type CampaignRepository struct {
	store     *Store
	mu        sync.RWMutex
	campaigns map[uuid.UUID]*domain.Campaign
}

func (r *CampaignRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, domain.Ef(domain.KindNotFound, "campaign %s not found", id)
	}
	cp := *c
	return &cp, nil
}

func (r *CampaignRepository) Create(_ context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.campaigns == nil {
		r.campaigns = make(map[uuid.UUID]*domain.Campaign)
	}
	if _, exists := r.campaigns[c.ID]; exists {
		return domain.Ef(domain.KindState, "campaign %s already exists", c.ID)
	}
	cp := *c
	r.campaigns[c.ID] = &cp
	return nil
}

func (r *CampaignRepository) Update(_ context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[c.ID]; !ok {
		return domain.Ef(domain.KindNotFound, "campaign %s not found", c.ID)
	}
	cp := *c
	r.campaigns[c.ID] = &cp
	return nil
}

func (r *CampaignRepository) List(_ context.Context, statusFilter domain.CampaignStatus) ([]*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Campaign
	for _, c := range r.campaigns {
		if statusFilter != "" && c.Status != statusFilter {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// StakeRepository implements domain.StakeRepository.
type StakeRepository struct {
	store  *Store
	mu     sync.RWMutex
	stakes []domain.SupporterStake
}

func (r *StakeRepository) Append(_ context.Context, s *domain.SupporterStake) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stakes = append(r.stakes, *s)
	return nil
}

func (r *StakeRepository) StakedAt(_ context.Context, supporter, campaignID uuid.UUID, seq int64) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := decimal.Zero
	for _, s := range r.stakes {
		if s.Supporter == supporter && s.CampaignID == campaignID && s.Seq <= seq {
			total = total.Add(s.Amount)
		}
	}
	return total, nil
}

func (r *StakeRepository) TotalStakedAt(_ context.Context, campaignID uuid.UUID, seq int64) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := decimal.Zero
	for _, s := range r.stakes {
		if s.CampaignID == campaignID && s.Seq <= seq {
			total = total.Add(s.Amount)
		}
	}
	return total, nil
}

func (r *StakeRepository) Staked(ctx context.Context, supporter, campaignID uuid.UUID) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := decimal.Zero
	for _, s := range r.stakes {
		if s.Supporter == supporter && s.CampaignID == campaignID {
			total = total.Add(s.Amount)
		}
	}
	return total, nil
}

// CheckpointRepository implements domain.CheckpointRepository.
type CheckpointRepository struct {
	store       *Store
	mu          sync.RWMutex
	checkpoints map[uuid.UUID]*domain.Checkpoint
	votes       map[voteKey]*domain.VoteRecord
}

func (r *CheckpointRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Checkpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp, ok := r.checkpoints[id]
	if !ok {
		return nil, domain.Ef(domain.KindNotFound, "checkpoint %s not found", id)
	}
	c := *cp
	return &c, nil
}

func (r *CheckpointRepository) Create(_ context.Context, cp *domain.Checkpoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.checkpoints == nil {
		r.checkpoints = make(map[uuid.UUID]*domain.Checkpoint)
	}
	c := *cp
	r.checkpoints[cp.ID] = &c
	return nil
}

func (r *CheckpointRepository) Update(_ context.Context, cp *domain.Checkpoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.checkpoints[cp.ID]; !ok {
		return domain.Ef(domain.KindNotFound, "checkpoint %s not found", cp.ID)
	}
	c := *cp
	r.checkpoints[cp.ID] = &c
	return nil
}

func (r *CheckpointRepository) ListByCampaign(_ context.Context, campaignID uuid.UUID) ([]*domain.Checkpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Checkpoint
	for _, cp := range r.checkpoints {
		if cp.CampaignID == campaignID {
			c := *cp
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *CheckpointRepository) HasPending(_ context.Context, campaignID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cp := range r.checkpoints {
		if cp.CampaignID == campaignID && cp.Status == domain.CheckpointStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *CheckpointRepository) GetVote(_ context.Context, checkpointID, supporter uuid.UUID) (*domain.VoteRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.votes[voteKey{checkpointID, supporter}]
	if !ok {
		return nil, domain.E(domain.KindNotFound, "vote not found")
	}
	c := *v
	return &c, nil
}

func (r *CheckpointRepository) SaveVote(_ context.Context, v *domain.VoteRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.votes == nil {
		r.votes = make(map[voteKey]*domain.VoteRecord)
	}
	c := *v
	r.votes[voteKey{v.CheckpointID, v.Supporter}] = &c
	return nil
}

// DistributionRepository implements domain.DistributionRepository.
type DistributionRepository struct {
	store         *Store
	mu            sync.RWMutex
	distributions map[uuid.UUID]*domain.Distribution
	claims        map[claimKey]*domain.ClaimRecord
}

func (r *DistributionRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Distribution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.distributions[id]
	if !ok {
		return nil, domain.Ef(domain.KindNotFound, "distribution %s not found", id)
	}
	c := *d
	return &c, nil
}

func (r *DistributionRepository) Create(_ context.Context, d *domain.Distribution) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.distributions == nil {
		r.distributions = make(map[uuid.UUID]*domain.Distribution)
	}
	c := *d
	r.distributions[d.ID] = &c
	return nil
}

func (r *DistributionRepository) Update(_ context.Context, d *domain.Distribution) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.distributions[d.ID]; !ok {
		return domain.Ef(domain.KindNotFound, "distribution %s not found", d.ID)
	}
	c := *d
	r.distributions[d.ID] = &c
	return nil
}

func (r *DistributionRepository) ListByVault(_ context.Context, vaultID uuid.UUID) ([]*domain.Distribution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Distribution
	for _, d := range r.distributions {
		if d.VaultID == vaultID {
			c := *d
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *DistributionRepository) GetClaim(_ context.Context, distributionID, depositor uuid.UUID) (*domain.ClaimRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.claims[claimKey{distributionID, depositor}]
	if !ok {
		return nil, domain.E(domain.KindNotFound, "claim not found")
	}
	cc := *c
	return &cc, nil
}

func (r *DistributionRepository) SaveClaim(_ context.Context, c *domain.ClaimRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.claims == nil {
		r.claims = make(map[claimKey]*domain.ClaimRecord)
	}
	cc := *c
	r.claims[claimKey{c.DistributionID, c.Depositor}] = &cc
	return nil
}

// PayoutRepository implements domain.PayoutRepository.
type PayoutRepository struct {
	store         *Store
	mu            sync.RWMutex
	entries       []domain.PayoutEntry
	escrows       map[uuid.UUID]*domain.EscrowBucket
	contributions map[uuid.UUID][]domain.EscrowContribution
}

func (r *PayoutRepository) Append(_ context.Context, e *domain.PayoutEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *e)
	return nil
}

func (r *PayoutRepository) ListByDistribution(_ context.Context, distributionID uuid.UUID) ([]*domain.PayoutEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.PayoutEntry
	for i := range r.entries {
		if r.entries[i].DistributionID == distributionID {
			c := r.entries[i]
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *PayoutRepository) GetEscrow(_ context.Context, campaignID uuid.UUID) (*domain.EscrowBucket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.escrows[campaignID]
	if !ok {
		return &domain.EscrowBucket{CampaignID: campaignID, Amount: decimal.Zero}, nil
	}
	c := *b
	return &c, nil
}

func (r *PayoutRepository) SaveEscrow(_ context.Context, b *domain.EscrowBucket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.escrows == nil {
		r.escrows = make(map[uuid.UUID]*domain.EscrowBucket)
	}
	c := *b
	r.escrows[b.CampaignID] = &c
	return nil
}

func (r *PayoutRepository) AddEscrowContribution(_ context.Context, c *domain.EscrowContribution) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.contributions == nil {
		r.contributions = make(map[uuid.UUID][]domain.EscrowContribution)
	}
	// Accumulate per depositor.
	list := r.contributions[c.CampaignID]
	for i := range list {
		if list[i].Depositor == c.Depositor {
			list[i].Amount = list[i].Amount.Add(c.Amount)
			r.contributions[c.CampaignID] = list
			return nil
		}
	}
	r.contributions[c.CampaignID] = append(list, *c)
	return nil
}

func (r *PayoutRepository) ListEscrowContributions(_ context.Context, campaignID uuid.UUID) ([]*domain.EscrowContribution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.EscrowContribution
	for i := range r.contributions[campaignID] {
		c := r.contributions[campaignID][i]
		out = append(out, &c)
	}
	return out, nil
}

func (r *PayoutRepository) ClearEscrowContributions(_ context.Context, campaignID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.contributions, campaignID)
	return nil
}
