package grpc

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	donorvaultv1 "github.com/donorvault/donorvault-backend/internal/adapter/grpc/donorvault/v1"
	"github.com/donorvault/donorvault-backend/internal/domain"
	"github.com/donorvault/donorvault-backend/internal/usecase/campaign"
	"github.com/donorvault/donorvault-backend/internal/usecase/governance"
	"github.com/donorvault/donorvault-backend/internal/usecase/payout"
	"github.com/donorvault/donorvault-backend/internal/usecase/vault"
)

// Server implements the DonorVaultService gRPC server
type Server struct {
	donorvaultv1.UnimplementedDonorVaultServiceServer

	VaultService      *vault.Service
	PayoutService     *payout.Service
	CampaignService   *campaign.Service
	GovernanceService *governance.Service
}

// NewServer creates a new gRPC server instance
func NewServer(
	vaultService *vault.Service,
	payoutService *payout.Service,
	campaignService *campaign.Service,
	governanceService *governance.Service,
) *Server {
	return &Server{
		VaultService:      vaultService,
		PayoutService:     payoutService,
		CampaignService:   campaignService,
		GovernanceService: governanceService,
	}
}

// --- Vault ledger ---

// Deposit handles the Deposit RPC
func (s *Server) Deposit(ctx context.Context, req *donorvaultv1.DepositRequest) (*donorvaultv1.DepositResponse, error) {
	caller, err := parseID("caller", req.Caller)
	if err != nil {
		return nil, err
	}
	vaultID, err := parseID("vault_id", req.VaultId)
	if err != nil {
		return nil, err
	}
	receiver, err := parseID("receiver", req.Receiver)
	if err != nil {
		return nil, err
	}
	assets, err := parseAmount("assets", req.Assets)
	if err != nil {
		return nil, err
	}

	input := vault.DepositInput{
		Caller:   caller,
		VaultID:  vaultID,
		Assets:   assets,
		Receiver: receiver,
	}
	if req.CampaignId != "" {
		campaignID, err := parseID("campaign_id", req.CampaignId)
		if err != nil {
			return nil, err
		}
		input.CampaignID = &campaignID
	}

	shares, err := s.VaultService.Deposit(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return &donorvaultv1.DepositResponse{SharesMinted: shares.String()}, nil
}

// Mint handles the Mint RPC
func (s *Server) Mint(ctx context.Context, req *donorvaultv1.MintRequest) (*donorvaultv1.MintResponse, error) {
	caller, err := parseID("caller", req.Caller)
	if err != nil {
		return nil, err
	}
	vaultID, err := parseID("vault_id", req.VaultId)
	if err != nil {
		return nil, err
	}
	receiver, err := parseID("receiver", req.Receiver)
	if err != nil {
		return nil, err
	}
	shares, err := parseAmount("shares", req.Shares)
	if err != nil {
		return nil, err
	}

	input := vault.DepositInput{
		Caller:   caller,
		VaultID:  vaultID,
		Receiver: receiver,
	}
	if req.CampaignId != "" {
		campaignID, err := parseID("campaign_id", req.CampaignId)
		if err != nil {
			return nil, err
		}
		input.CampaignID = &campaignID
	}

	assets, err := s.VaultService.Mint(ctx, input, shares)
	if err != nil {
		return nil, mapError(err)
	}

	return &donorvaultv1.MintResponse{AssetsDeposited: assets.String()}, nil
}

// Withdraw handles the Withdraw RPC
func (s *Server) Withdraw(ctx context.Context, req *donorvaultv1.WithdrawRequest) (*donorvaultv1.WithdrawResponse, error) {
	input, err := withdrawInput(req.Caller, req.VaultId, req.Receiver, req.Owner)
	if err != nil {
		return nil, err
	}
	input.Assets, err = parseAmount("assets", req.Assets)
	if err != nil {
		return nil, err
	}

	shares, err := s.VaultService.Withdraw(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return &donorvaultv1.WithdrawResponse{SharesBurned: shares.String()}, nil
}

// Redeem handles the Redeem RPC
func (s *Server) Redeem(ctx context.Context, req *donorvaultv1.RedeemRequest) (*donorvaultv1.RedeemResponse, error) {
	input, err := withdrawInput(req.Caller, req.VaultId, req.Receiver, req.Owner)
	if err != nil {
		return nil, err
	}
	input.Shares, err = parseAmount("shares", req.Shares)
	if err != nil {
		return nil, err
	}

	assets, err := s.VaultService.Redeem(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return &donorvaultv1.RedeemResponse{AssetsPaid: assets.String()}, nil
}

// Approve handles the Approve RPC
func (s *Server) Approve(ctx context.Context, req *donorvaultv1.ApproveRequest) (*donorvaultv1.ApproveResponse, error) {
	caller, err := parseID("caller", req.Caller)
	if err != nil {
		return nil, err
	}
	vaultID, err := parseID("vault_id", req.VaultId)
	if err != nil {
		return nil, err
	}
	spender, err := parseID("spender", req.Spender)
	if err != nil {
		return nil, err
	}
	shares, err := parseAmount("shares", req.Shares)
	if err != nil {
		return nil, err
	}

	if err := s.VaultService.Approve(ctx, caller, vaultID, spender, shares); err != nil {
		return nil, mapError(err)
	}
	return &donorvaultv1.ApproveResponse{}, nil
}

// Harvest handles the Harvest RPC
func (s *Server) Harvest(ctx context.Context, req *donorvaultv1.HarvestRequest) (*donorvaultv1.HarvestResponse, error) {
	caller, vaultID, err := parseActorTarget(req.Caller, req.VaultId, "vault_id")
	if err != nil {
		return nil, err
	}

	profit, loss, err := s.VaultService.Harvest(ctx, caller, vaultID)
	if err != nil {
		return nil, mapError(err)
	}

	return &donorvaultv1.HarvestResponse{
		Profit: profit.String(),
		Loss:   loss.String(),
	}, nil
}

// SetAdapter handles the SetAdapter RPC
func (s *Server) SetAdapter(ctx context.Context, req *donorvaultv1.SetAdapterRequest) (*donorvaultv1.SetAdapterResponse, error) {
	caller, vaultID, err := parseActorTarget(req.Caller, req.VaultId, "vault_id")
	if err != nil {
		return nil, err
	}
	adapterID, err := parseID("adapter_id", req.AdapterId)
	if err != nil {
		return nil, err
	}

	if err := s.VaultService.SetAdapter(ctx, caller, vaultID, adapterID); err != nil {
		return nil, mapError(err)
	}
	return &donorvaultv1.SetAdapterResponse{}, nil
}

// PauseVault handles the PauseVault RPC
func (s *Server) PauseVault(ctx context.Context, req *donorvaultv1.PauseVaultRequest) (*donorvaultv1.PauseVaultResponse, error) {
	caller, vaultID, err := parseActorTarget(req.Caller, req.VaultId, "vault_id")
	if err != nil {
		return nil, err
	}
	if err := s.VaultService.Pause(ctx, caller, vaultID); err != nil {
		return nil, mapError(err)
	}
	return &donorvaultv1.PauseVaultResponse{}, nil
}

// ResumeVault handles the ResumeVault RPC
func (s *Server) ResumeVault(ctx context.Context, req *donorvaultv1.ResumeVaultRequest) (*donorvaultv1.ResumeVaultResponse, error) {
	caller, vaultID, err := parseActorTarget(req.Caller, req.VaultId, "vault_id")
	if err != nil {
		return nil, err
	}
	if err := s.VaultService.Resume(ctx, caller, vaultID); err != nil {
		return nil, mapError(err)
	}
	return &donorvaultv1.ResumeVaultResponse{}, nil
}

// EmergencyShutdown handles the EmergencyShutdown RPC
func (s *Server) EmergencyShutdown(ctx context.Context, req *donorvaultv1.EmergencyShutdownRequest) (*donorvaultv1.EmergencyShutdownResponse, error) {
	caller, vaultID, err := parseActorTarget(req.Caller, req.VaultId, "vault_id")
	if err != nil {
		return nil, err
	}
	if err := s.VaultService.EmergencyShutdown(ctx, caller, vaultID); err != nil {
		return nil, mapError(err)
	}
	return &donorvaultv1.EmergencyShutdownResponse{}, nil
}

// ResumeFromEmergency handles the ResumeFromEmergency RPC
func (s *Server) ResumeFromEmergency(ctx context.Context, req *donorvaultv1.ResumeFromEmergencyRequest) (*donorvaultv1.ResumeFromEmergencyResponse, error) {
	caller, vaultID, err := parseActorTarget(req.Caller, req.VaultId, "vault_id")
	if err != nil {
		return nil, err
	}
	if err := s.VaultService.ResumeFromEmergency(ctx, caller, vaultID); err != nil {
		return nil, mapError(err)
	}
	return &donorvaultv1.ResumeFromEmergencyResponse{}, nil
}

// EmergencyWithdraw handles the EmergencyWithdraw RPC
func (s *Server) EmergencyWithdraw(ctx context.Context, req *donorvaultv1.EmergencyWithdrawRequest) (*donorvaultv1.EmergencyWithdrawResponse, error) {
	input, err := withdrawInput(req.Caller, req.VaultId, req.Receiver, req.Owner)
	if err != nil {
		return nil, err
	}
	input.Shares, err = parseAmount("shares", req.Shares)
	if err != nil {
		return nil, err
	}

	assets, err := s.VaultService.EmergencyWithdraw(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return &donorvaultv1.EmergencyWithdrawResponse{AssetsPaid: assets.String()}, nil
}

// GetVault handles the GetVault RPC
func (s *Server) GetVault(ctx context.Context, req *donorvaultv1.GetVaultRequest) (*donorvaultv1.GetVaultResponse, error) {
	vaultID, err := parseID("vault_id", req.VaultId)
	if err != nil {
		return nil, err
	}

	v, err := s.VaultService.GetConfiguration(ctx, vaultID)
	if err != nil {
		return nil, mapError(err)
	}
	totalAssets, err := s.VaultService.TotalAssets(ctx, vaultID)
	if err != nil {
		return nil, mapError(err)
	}

	return &donorvaultv1.GetVaultResponse{Vault: domainVaultToProto(v, totalAssets)}, nil
}

// --- Payout router ---

// Claim handles the Claim RPC
func (s *Server) Claim(ctx context.Context, req *donorvaultv1.ClaimRequest) (*donorvaultv1.ClaimResponse, error) {
	depositor, err := parseID("depositor", req.Depositor)
	if err != nil {
		return nil, err
	}
	distributionID, err := parseID("distribution_id", req.DistributionId)
	if err != nil {
		return nil, err
	}

	result, err := s.PayoutService.Claim(ctx, depositor, distributionID)
	if err != nil {
		return nil, mapError(err)
	}

	return claimResultToProto(result), nil
}

// ClaimAll handles the ClaimAll RPC
func (s *Server) ClaimAll(ctx context.Context, req *donorvaultv1.ClaimAllRequest) (*donorvaultv1.ClaimAllResponse, error) {
	depositor, err := parseID("depositor", req.Depositor)
	if err != nil {
		return nil, err
	}
	vaultID, err := parseID("vault_id", req.VaultId)
	if err != nil {
		return nil, err
	}

	results, err := s.PayoutService.ClaimAll(ctx, depositor, vaultID)
	if err != nil {
		return nil, mapError(err)
	}

	claims := make([]*donorvaultv1.ClaimResponse, 0, len(results))
	for _, r := range results {
		claims = append(claims, claimResultToProto(r))
	}
	return &donorvaultv1.ClaimAllResponse{Claims: claims}, nil
}

// PendingEntitlement handles the PendingEntitlement RPC
func (s *Server) PendingEntitlement(ctx context.Context, req *donorvaultv1.PendingEntitlementRequest) (*donorvaultv1.PendingEntitlementResponse, error) {
	depositor, err := parseID("depositor", req.Depositor)
	if err != nil {
		return nil, err
	}
	vaultID, err := parseID("vault_id", req.VaultId)
	if err != nil {
		return nil, err
	}

	amount, err := s.PayoutService.PendingEntitlement(ctx, depositor, vaultID)
	if err != nil {
		return nil, mapError(err)
	}

	return &donorvaultv1.PendingEntitlementResponse{Amount: amount.String()}, nil
}

// SetPreference handles the SetPreference RPC
func (s *Server) SetPreference(ctx context.Context, req *donorvaultv1.SetPreferenceRequest) (*donorvaultv1.SetPreferenceResponse, error) {
	caller, err := parseID("caller", req.Caller)
	if err != nil {
		return nil, err
	}
	vaultID, err := parseID("vault_id", req.VaultId)
	if err != nil {
		return nil, err
	}
	campaignID, err := parseID("campaign_id", req.CampaignId)
	if err != nil {
		return nil, err
	}

	input := payout.SetPreferenceInput{
		Caller:      caller,
		VaultID:     vaultID,
		CampaignID:  campaignID,
		CampaignBps: req.CampaignBps,
	}
	if req.Beneficiary != "" {
		input.Beneficiary, err = parseID("beneficiary", req.Beneficiary)
		if err != nil {
			return nil, err
		}
	}

	if err := s.PayoutService.SetPreference(ctx, input); err != nil {
		return nil, mapError(err)
	}
	return &donorvaultv1.SetPreferenceResponse{}, nil
}

// GetPreference handles the GetPreference RPC
func (s *Server) GetPreference(ctx context.Context, req *donorvaultv1.GetPreferenceRequest) (*donorvaultv1.GetPreferenceResponse, error) {
	depositor, err := parseID("depositor", req.Depositor)
	if err != nil {
		return nil, err
	}
	vaultID, err := parseID("vault_id", req.VaultId)
	if err != nil {
		return nil, err
	}

	pref, err := s.PayoutService.GetPreference(ctx, depositor, vaultID)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &donorvaultv1.GetPreferenceResponse{
		CampaignId:  pref.CampaignID.String(),
		CampaignBps: pref.CampaignBps,
	}
	if pref.Beneficiary != uuid.Nil {
		resp.Beneficiary = pref.Beneficiary.String()
	}
	return resp, nil
}

// ReleaseEscrow handles the ReleaseEscrow RPC
func (s *Server) ReleaseEscrow(ctx context.Context, req *donorvaultv1.ReleaseEscrowRequest) (*donorvaultv1.ReleaseEscrowResponse, error) {
	caller, campaignID, err := parseActorTarget(req.Caller, req.CampaignId, "campaign_id")
	if err != nil {
		return nil, err
	}

	amount, err := s.PayoutService.ReleaseEscrow(ctx, caller, campaignID)
	if err != nil {
		return nil, mapError(err)
	}

	return &donorvaultv1.ReleaseEscrowResponse{AmountReleased: amount.String()}, nil
}

// RefundEscrow handles the RefundEscrow RPC
func (s *Server) RefundEscrow(ctx context.Context, req *donorvaultv1.RefundEscrowRequest) (*donorvaultv1.RefundEscrowResponse, error) {
	caller, campaignID, err := parseActorTarget(req.Caller, req.CampaignId, "campaign_id")
	if err != nil {
		return nil, err
	}

	amount, err := s.PayoutService.RefundEscrow(ctx, caller, campaignID)
	if err != nil {
		return nil, mapError(err)
	}

	return &donorvaultv1.RefundEscrowResponse{AmountRefunded: amount.String()}, nil
}

// --- Campaigns and staking ---

// SubmitCampaign handles the SubmitCampaign RPC
func (s *Server) SubmitCampaign(ctx context.Context, req *donorvaultv1.SubmitCampaignRequest) (*donorvaultv1.SubmitCampaignResponse, error) {
	curator, err := parseID("curator", req.Curator)
	if err != nil {
		return nil, err
	}
	fundingTarget, err := parseAmount("funding_target", req.FundingTarget)
	if err != nil {
		return nil, err
	}
	stakeAmount, err := parseAmount("stake_amount", req.StakeAmount)
	if err != nil {
		return nil, err
	}

	c, err := s.CampaignService.Submit(ctx, campaign.SubmitInput{
		Curator:       curator,
		Name:          req.Name,
		FundingTarget: fundingTarget,
		StakeAmount:   stakeAmount,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &donorvaultv1.SubmitCampaignResponse{Campaign: domainCampaignToProto(c)}, nil
}

// ApproveCampaign handles the ApproveCampaign RPC
func (s *Server) ApproveCampaign(ctx context.Context, req *donorvaultv1.CampaignActionRequest) (*donorvaultv1.CampaignActionResponse, error) {
	return s.campaignAction(ctx, req, s.CampaignService.Approve)
}

// ActivateCampaign handles the ActivateCampaign RPC
func (s *Server) ActivateCampaign(ctx context.Context, req *donorvaultv1.CampaignActionRequest) (*donorvaultv1.CampaignActionResponse, error) {
	return s.campaignAction(ctx, req, s.CampaignService.Activate)
}

// PauseCampaign handles the PauseCampaign RPC
func (s *Server) PauseCampaign(ctx context.Context, req *donorvaultv1.CampaignActionRequest) (*donorvaultv1.CampaignActionResponse, error) {
	return s.campaignAction(ctx, req, s.CampaignService.Pause)
}

// ResumeCampaign handles the ResumeCampaign RPC
func (s *Server) ResumeCampaign(ctx context.Context, req *donorvaultv1.CampaignActionRequest) (*donorvaultv1.CampaignActionResponse, error) {
	return s.campaignAction(ctx, req, s.CampaignService.Resume)
}

// CompleteCampaign handles the CompleteCampaign RPC
func (s *Server) CompleteCampaign(ctx context.Context, req *donorvaultv1.CampaignActionRequest) (*donorvaultv1.CampaignActionResponse, error) {
	return s.campaignAction(ctx, req, s.CampaignService.Complete)
}

// CancelCampaign handles the CancelCampaign RPC
func (s *Server) CancelCampaign(ctx context.Context, req *donorvaultv1.CampaignActionRequest) (*donorvaultv1.CampaignActionResponse, error) {
	return s.campaignAction(ctx, req, s.CampaignService.Cancel)
}

func (s *Server) campaignAction(
	ctx context.Context,
	req *donorvaultv1.CampaignActionRequest,
	action func(context.Context, uuid.UUID, uuid.UUID) error,
) (*donorvaultv1.CampaignActionResponse, error) {
	caller, campaignID, err := parseActorTarget(req.Caller, req.CampaignId, "campaign_id")
	if err != nil {
		return nil, err
	}
	if err := action(ctx, caller, campaignID); err != nil {
		return nil, mapError(err)
	}
	return &donorvaultv1.CampaignActionResponse{}, nil
}

// Stake handles the Stake RPC
func (s *Server) Stake(ctx context.Context, req *donorvaultv1.StakeRequest) (*donorvaultv1.StakeResponse, error) {
	supporter, campaignID, vaultID, amount, err := parseStake(req.Supporter, req.CampaignId, req.VaultId, req.Amount)
	if err != nil {
		return nil, err
	}
	if err := s.CampaignService.Stake(ctx, supporter, campaignID, vaultID, amount); err != nil {
		return nil, mapError(err)
	}
	return &donorvaultv1.StakeResponse{}, nil
}

// Unstake handles the Unstake RPC
func (s *Server) Unstake(ctx context.Context, req *donorvaultv1.UnstakeRequest) (*donorvaultv1.UnstakeResponse, error) {
	supporter, campaignID, vaultID, amount, err := parseStake(req.Supporter, req.CampaignId, req.VaultId, req.Amount)
	if err != nil {
		return nil, err
	}
	if err := s.CampaignService.Unstake(ctx, supporter, campaignID, vaultID, amount); err != nil {
		return nil, mapError(err)
	}
	return &donorvaultv1.UnstakeResponse{}, nil
}

// GetCampaign handles the GetCampaign RPC
func (s *Server) GetCampaign(ctx context.Context, req *donorvaultv1.GetCampaignRequest) (*donorvaultv1.GetCampaignResponse, error) {
	campaignID, err := parseID("campaign_id", req.CampaignId)
	if err != nil {
		return nil, err
	}

	c, err := s.CampaignService.Get(ctx, campaignID)
	if err != nil {
		return nil, mapError(err)
	}

	return &donorvaultv1.GetCampaignResponse{Campaign: domainCampaignToProto(c)}, nil
}

// ListCampaigns handles the ListCampaigns RPC
func (s *Server) ListCampaigns(ctx context.Context, req *donorvaultv1.ListCampaignsRequest) (*donorvaultv1.ListCampaignsResponse, error) {
	// UNSPECIFIED means no filter
	var statusFilter domain.CampaignStatus
	if req.Status != donorvaultv1.CampaignStatus_CAMPAIGN_STATUS_UNSPECIFIED {
		statusFilter = protoCampaignStatusToDomain(req.Status)
	}

	campaigns, err := s.CampaignService.List(ctx, statusFilter)
	if err != nil {
		return nil, mapError(err)
	}

	protoCampaigns := make([]*donorvaultv1.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		protoCampaigns = append(protoCampaigns, domainCampaignToProto(c))
	}
	return &donorvaultv1.ListCampaignsResponse{Campaigns: protoCampaigns}, nil
}

// --- Checkpoint governance ---

// ScheduleCheckpoint handles the ScheduleCheckpoint RPC
func (s *Server) ScheduleCheckpoint(ctx context.Context, req *donorvaultv1.ScheduleCheckpointRequest) (*donorvaultv1.ScheduleCheckpointResponse, error) {
	caller, campaignID, err := parseActorTarget(req.Caller, req.CampaignId, "campaign_id")
	if err != nil {
		return nil, err
	}
	if req.VoteDeadline == nil {
		return nil, status.Errorf(codes.InvalidArgument, "vote_deadline is required")
	}

	cp, err := s.GovernanceService.ScheduleCheckpoint(ctx, governance.ScheduleInput{
		Caller:       caller,
		CampaignID:   campaignID,
		Title:        req.Title,
		VoteDeadline: req.VoteDeadline.AsTime(),
		QuorumBps:    req.QuorumBps,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &donorvaultv1.ScheduleCheckpointResponse{Checkpoint: domainCheckpointToProto(cp)}, nil
}

// CastVote handles the CastVote RPC
func (s *Server) CastVote(ctx context.Context, req *donorvaultv1.CastVoteRequest) (*donorvaultv1.CastVoteResponse, error) {
	supporter, err := parseID("supporter", req.Supporter)
	if err != nil {
		return nil, err
	}
	checkpointID, err := parseID("checkpoint_id", req.CheckpointId)
	if err != nil {
		return nil, err
	}

	if err := s.GovernanceService.Vote(ctx, supporter, checkpointID, req.Support); err != nil {
		return nil, mapError(err)
	}
	return &donorvaultv1.CastVoteResponse{}, nil
}

// FinalizeCheckpoint handles the FinalizeCheckpoint RPC
func (s *Server) FinalizeCheckpoint(ctx context.Context, req *donorvaultv1.FinalizeCheckpointRequest) (*donorvaultv1.FinalizeCheckpointResponse, error) {
	caller, checkpointID, err := parseActorTarget(req.Caller, req.CheckpointId, "checkpoint_id")
	if err != nil {
		return nil, err
	}

	cp, err := s.GovernanceService.Finalize(ctx, caller, checkpointID)
	if err != nil {
		return nil, mapError(err)
	}

	return &donorvaultv1.FinalizeCheckpointResponse{Checkpoint: domainCheckpointToProto(cp)}, nil
}

// ClearHalt handles the ClearHalt RPC
func (s *Server) ClearHalt(ctx context.Context, req *donorvaultv1.CampaignActionRequest) (*donorvaultv1.CampaignActionResponse, error) {
	return s.campaignAction(ctx, req, s.GovernanceService.ClearHalt)
}

// GetCheckpoint handles the GetCheckpoint RPC
func (s *Server) GetCheckpoint(ctx context.Context, req *donorvaultv1.GetCheckpointRequest) (*donorvaultv1.GetCheckpointResponse, error) {
	checkpointID, err := parseID("checkpoint_id", req.CheckpointId)
	if err != nil {
		return nil, err
	}

	cp, err := s.GovernanceService.GetCheckpoint(ctx, checkpointID)
	if err != nil {
		return nil, mapError(err)
	}

	return &donorvaultv1.GetCheckpointResponse{Checkpoint: domainCheckpointToProto(cp)}, nil
}

// ListCheckpoints handles the ListCheckpoints RPC
func (s *Server) ListCheckpoints(ctx context.Context, req *donorvaultv1.ListCheckpointsRequest) (*donorvaultv1.ListCheckpointsResponse, error) {
	campaignID, err := parseID("campaign_id", req.CampaignId)
	if err != nil {
		return nil, err
	}

	checkpoints, err := s.GovernanceService.ListCheckpoints(ctx, campaignID)
	if err != nil {
		return nil, mapError(err)
	}

	protoCheckpoints := make([]*donorvaultv1.Checkpoint, 0, len(checkpoints))
	for _, cp := range checkpoints {
		protoCheckpoints = append(protoCheckpoints, domainCheckpointToProto(cp))
	}
	return &donorvaultv1.ListCheckpointsResponse{Checkpoints: protoCheckpoints}, nil
}

// --- Parsing helpers ---

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return id, nil
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return amount, nil
}

func parseActorTarget(actor, target, targetField string) (uuid.UUID, uuid.UUID, error) {
	actorID, err := parseID("caller", actor)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	targetID, err := parseID(targetField, target)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return actorID, targetID, nil
}

func parseStake(supporter, campaignID, vaultID, amount string) (uuid.UUID, uuid.UUID, uuid.UUID, decimal.Decimal, error) {
	supporterID, err := parseID("supporter", supporter)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, decimal.Decimal{}, err
	}
	cID, err := parseID("campaign_id", campaignID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, decimal.Decimal{}, err
	}
	vID, err := parseID("vault_id", vaultID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, decimal.Decimal{}, err
	}
	amt, err := parseAmount("amount", amount)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, decimal.Decimal{}, err
	}
	return supporterID, cID, vID, amt, nil
}

func withdrawInput(caller, vaultID, receiver, owner string) (vault.WithdrawInput, error) {
	callerID, err := parseID("caller", caller)
	if err != nil {
		return vault.WithdrawInput{}, err
	}
	vID, err := parseID("vault_id", vaultID)
	if err != nil {
		return vault.WithdrawInput{}, err
	}
	receiverID, err := parseID("receiver", receiver)
	if err != nil {
		return vault.WithdrawInput{}, err
	}
	ownerID, err := parseID("owner", owner)
	if err != nil {
		return vault.WithdrawInput{}, err
	}
	return vault.WithdrawInput{
		Caller:   callerID,
		VaultID:  vID,
		Receiver: receiverID,
		Owner:    ownerID,
	}, nil
}

// --- Proto conversion ---

func claimResultToProto(r *payout.ClaimResult) *donorvaultv1.ClaimResponse {
	return &donorvaultv1.ClaimResponse{
		Entitlement:       r.Entitlement.String(),
		CampaignAmount:    r.CampaignAmount.String(),
		BeneficiaryAmount: r.BeneficiaryAmount.String(),
		Escrowed:          r.Escrowed,
	}
}

func domainVaultToProto(v *domain.Vault, totalAssets decimal.Decimal) *donorvaultv1.Vault {
	protoVault := &donorvaultv1.Vault{
		Id:                v.ID.String(),
		Name:              v.Name,
		Asset:             v.Asset,
		CashBalance:       v.CashBalance.String(),
		SharesOutstanding: v.SharesOutstanding.String(),
		TotalAssets:       totalAssets.String(),
		CashBufferBps:     v.CashBufferBps,
		SlippageBps:       v.SlippageBps,
		MaxLossBps:        v.MaxLossBps,
		ProtocolFeeBps:    v.ProtocolFeeBps,
		TotalProfit:       v.TotalProfit.String(),
		TotalLoss:         v.TotalLoss.String(),
		Mode:              domainVaultModeToProto(v.Mode),
		LastDivestError:   v.LastDivestError,
	}
	if v.ActiveAdapterID != nil {
		protoVault.ActiveAdapterId = v.ActiveAdapterID.String()
	}
	if !v.LastHarvestTime.IsZero() {
		protoVault.LastHarvestTime = timestamppb.New(v.LastHarvestTime)
	}
	return protoVault
}

func domainCampaignToProto(c *domain.Campaign) *donorvaultv1.Campaign {
	return &donorvaultv1.Campaign{
		Id:            c.ID.String(),
		Name:          c.Name,
		Curator:       c.Curator.String(),
		Status:        domainCampaignStatusToProto(c.Status),
		TotalReceived: c.TotalReceived.String(),
		StakeAmount:   c.StakeAmount.String(),
		FundingTarget: c.FundingTarget.String(),
		PayoutsHalted: c.PayoutsHalted,
		CreatedAt:     timestamppb.New(c.CreatedAt),
	}
}

func domainCheckpointToProto(cp *domain.Checkpoint) *donorvaultv1.Checkpoint {
	return &donorvaultv1.Checkpoint{
		Id:                 cp.ID.String(),
		CampaignId:         cp.CampaignID.String(),
		Title:              cp.Title,
		VoteDeadline:       timestamppb.New(cp.VoteDeadline),
		QuorumBps:          cp.QuorumBps,
		SnapshotSeq:        cp.SnapshotSeq,
		VotesFor:           cp.VotesFor.String(),
		VotesAgainst:       cp.VotesAgainst.String(),
		TotalEligiblePower: cp.TotalEligiblePower.String(),
		Status:             domainCheckpointStatusToProto(cp.Status),
	}
}

func domainVaultModeToProto(mode domain.VaultMode) donorvaultv1.VaultMode {
	switch mode {
	case domain.VaultModeNormal:
		return donorvaultv1.VaultMode_VAULT_MODE_NORMAL
	case domain.VaultModePaused:
		return donorvaultv1.VaultMode_VAULT_MODE_PAUSED
	case domain.VaultModeEmergencyShutdown:
		return donorvaultv1.VaultMode_VAULT_MODE_EMERGENCY_SHUTDOWN
	default:
		return donorvaultv1.VaultMode_VAULT_MODE_UNSPECIFIED
	}
}

func domainCampaignStatusToProto(s domain.CampaignStatus) donorvaultv1.CampaignStatus {
	switch s {
	case domain.CampaignStatusSubmitted:
		return donorvaultv1.CampaignStatus_CAMPAIGN_STATUS_SUBMITTED
	case domain.CampaignStatusApproved:
		return donorvaultv1.CampaignStatus_CAMPAIGN_STATUS_APPROVED
	case domain.CampaignStatusActive:
		return donorvaultv1.CampaignStatus_CAMPAIGN_STATUS_ACTIVE
	case domain.CampaignStatusPaused:
		return donorvaultv1.CampaignStatus_CAMPAIGN_STATUS_PAUSED
	case domain.CampaignStatusCompleted:
		return donorvaultv1.CampaignStatus_CAMPAIGN_STATUS_COMPLETED
	case domain.CampaignStatusCancelled:
		return donorvaultv1.CampaignStatus_CAMPAIGN_STATUS_CANCELLED
	default:
		return donorvaultv1.CampaignStatus_CAMPAIGN_STATUS_UNSPECIFIED
	}
}

func protoCampaignStatusToDomain(s donorvaultv1.CampaignStatus) domain.CampaignStatus {
	switch s {
	case donorvaultv1.CampaignStatus_CAMPAIGN_STATUS_SUBMITTED:
		return domain.CampaignStatusSubmitted
	case donorvaultv1.CampaignStatus_CAMPAIGN_STATUS_APPROVED:
		return domain.CampaignStatusApproved
	case donorvaultv1.CampaignStatus_CAMPAIGN_STATUS_ACTIVE:
		return domain.CampaignStatusActive
	case donorvaultv1.CampaignStatus_CAMPAIGN_STATUS_PAUSED:
		return domain.CampaignStatusPaused
	case donorvaultv1.CampaignStatus_CAMPAIGN_STATUS_COMPLETED:
		return domain.CampaignStatusCompleted
	case donorvaultv1.CampaignStatus_CAMPAIGN_STATUS_CANCELLED:
		return domain.CampaignStatusCancelled
	default:
		return ""
	}
}

func domainCheckpointStatusToProto(s domain.CheckpointStatus) donorvaultv1.CheckpointStatus {
	switch s {
	case domain.CheckpointStatusPending:
		return donorvaultv1.CheckpointStatus_CHECKPOINT_STATUS_PENDING
	case domain.CheckpointStatusPassed:
		return donorvaultv1.CheckpointStatus_CHECKPOINT_STATUS_PASSED
	case domain.CheckpointStatusFailed:
		return donorvaultv1.CheckpointStatus_CHECKPOINT_STATUS_FAILED
	default:
		return donorvaultv1.CheckpointStatus_CHECKPOINT_STATUS_UNSPECIFIED
	}
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch domain.KindOf(err) {
	case domain.KindValidation:
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case domain.KindNotFound:
		return status.Errorf(codes.NotFound, "%s", err.Error())
	case domain.KindAuthorization:
		return status.Errorf(codes.PermissionDenied, "%s", err.Error())
	case domain.KindState, domain.KindIntegrity, domain.KindTemporal:
		return status.Errorf(codes.FailedPrecondition, "%s", err.Error())
	case domain.KindConcurrency:
		return status.Errorf(codes.Aborted, "%s", err.Error())
	default:
		return status.Errorf(codes.Internal, "%s", err.Error())
	}
}
