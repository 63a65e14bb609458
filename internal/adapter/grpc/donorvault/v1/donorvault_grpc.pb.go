// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: donorvault/v1/donorvault.proto

package donorvaultv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	DonorVaultService_Deposit_FullMethodName             = "/donorvault.v1.DonorVaultService/Deposit"
	DonorVaultService_Mint_FullMethodName                = "/donorvault.v1.DonorVaultService/Mint"
	DonorVaultService_Withdraw_FullMethodName            = "/donorvault.v1.DonorVaultService/Withdraw"
	DonorVaultService_Redeem_FullMethodName              = "/donorvault.v1.DonorVaultService/Redeem"
	DonorVaultService_Approve_FullMethodName             = "/donorvault.v1.DonorVaultService/Approve"
	DonorVaultService_Harvest_FullMethodName             = "/donorvault.v1.DonorVaultService/Harvest"
	DonorVaultService_SetAdapter_FullMethodName          = "/donorvault.v1.DonorVaultService/SetAdapter"
	DonorVaultService_PauseVault_FullMethodName          = "/donorvault.v1.DonorVaultService/PauseVault"
	DonorVaultService_ResumeVault_FullMethodName         = "/donorvault.v1.DonorVaultService/ResumeVault"
	DonorVaultService_EmergencyShutdown_FullMethodName   = "/donorvault.v1.DonorVaultService/EmergencyShutdown"
	DonorVaultService_ResumeFromEmergency_FullMethodName = "/donorvault.v1.DonorVaultService/ResumeFromEmergency"
	DonorVaultService_EmergencyWithdraw_FullMethodName   = "/donorvault.v1.DonorVaultService/EmergencyWithdraw"
	DonorVaultService_GetVault_FullMethodName            = "/donorvault.v1.DonorVaultService/GetVault"
	DonorVaultService_Claim_FullMethodName               = "/donorvault.v1.DonorVaultService/Claim"
	DonorVaultService_ClaimAll_FullMethodName            = "/donorvault.v1.DonorVaultService/ClaimAll"
	DonorVaultService_PendingEntitlement_FullMethodName  = "/donorvault.v1.DonorVaultService/PendingEntitlement"
	DonorVaultService_SetPreference_FullMethodName       = "/donorvault.v1.DonorVaultService/SetPreference"
	DonorVaultService_GetPreference_FullMethodName       = "/donorvault.v1.DonorVaultService/GetPreference"
	DonorVaultService_ReleaseEscrow_FullMethodName       = "/donorvault.v1.DonorVaultService/ReleaseEscrow"
	DonorVaultService_RefundEscrow_FullMethodName        = "/donorvault.v1.DonorVaultService/RefundEscrow"
	DonorVaultService_SubmitCampaign_FullMethodName      = "/donorvault.v1.DonorVaultService/SubmitCampaign"
	DonorVaultService_ApproveCampaign_FullMethodName     = "/donorvault.v1.DonorVaultService/ApproveCampaign"
	DonorVaultService_ActivateCampaign_FullMethodName    = "/donorvault.v1.DonorVaultService/ActivateCampaign"
	DonorVaultService_PauseCampaign_FullMethodName       = "/donorvault.v1.DonorVaultService/PauseCampaign"
	DonorVaultService_ResumeCampaign_FullMethodName      = "/donorvault.v1.DonorVaultService/ResumeCampaign"
	DonorVaultService_CompleteCampaign_FullMethodName    = "/donorvault.v1.DonorVaultService/CompleteCampaign"
	DonorVaultService_CancelCampaign_FullMethodName      = "/donorvault.v1.DonorVaultService/CancelCampaign"
	DonorVaultService_Stake_FullMethodName               = "/donorvault.v1.DonorVaultService/Stake"
	DonorVaultService_Unstake_FullMethodName             = "/donorvault.v1.DonorVaultService/Unstake"
	DonorVaultService_GetCampaign_FullMethodName         = "/donorvault.v1.DonorVaultService/GetCampaign"
	DonorVaultService_ListCampaigns_FullMethodName       = "/donorvault.v1.DonorVaultService/ListCampaigns"
	DonorVaultService_ScheduleCheckpoint_FullMethodName  = "/donorvault.v1.DonorVaultService/ScheduleCheckpoint"
	DonorVaultService_CastVote_FullMethodName            = "/donorvault.v1.DonorVaultService/CastVote"
	DonorVaultService_FinalizeCheckpoint_FullMethodName  = "/donorvault.v1.DonorVaultService/FinalizeCheckpoint"
	DonorVaultService_ClearHalt_FullMethodName           = "/donorvault.v1.DonorVaultService/ClearHalt"
	DonorVaultService_GetCheckpoint_FullMethodName       = "/donorvault.v1.DonorVaultService/GetCheckpoint"
	DonorVaultService_ListCheckpoints_FullMethodName     = "/donorvault.v1.DonorVaultService/ListCheckpoints"
)

// DonorVaultServiceClient is the client API for DonorVaultService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DonorVaultService exposes the vault ledger, payout router, campaign
// lifecycle and checkpoint governance. All monetary amounts travel as
// decimal strings in the vault asset's base units.
type DonorVaultServiceClient interface {
	// Vault ledger
	Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error)
	Mint(ctx context.Context, in *MintRequest, opts ...grpc.CallOption) (*MintResponse, error)
	Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error)
	Redeem(ctx context.Context, in *RedeemRequest, opts ...grpc.CallOption) (*RedeemResponse, error)
	Approve(ctx context.Context, in *ApproveRequest, opts ...grpc.CallOption) (*ApproveResponse, error)
	Harvest(ctx context.Context, in *HarvestRequest, opts ...grpc.CallOption) (*HarvestResponse, error)
	SetAdapter(ctx context.Context, in *SetAdapterRequest, opts ...grpc.CallOption) (*SetAdapterResponse, error)
	PauseVault(ctx context.Context, in *PauseVaultRequest, opts ...grpc.CallOption) (*PauseVaultResponse, error)
	ResumeVault(ctx context.Context, in *ResumeVaultRequest, opts ...grpc.CallOption) (*ResumeVaultResponse, error)
	EmergencyShutdown(ctx context.Context, in *EmergencyShutdownRequest, opts ...grpc.CallOption) (*EmergencyShutdownResponse, error)
	ResumeFromEmergency(ctx context.Context, in *ResumeFromEmergencyRequest, opts ...grpc.CallOption) (*ResumeFromEmergencyResponse, error)
	EmergencyWithdraw(ctx context.Context, in *EmergencyWithdrawRequest, opts ...grpc.CallOption) (*EmergencyWithdrawResponse, error)
	GetVault(ctx context.Context, in *GetVaultRequest, opts ...grpc.CallOption) (*GetVaultResponse, error)
	// Payout router
	Claim(ctx context.Context, in *ClaimRequest, opts ...grpc.CallOption) (*ClaimResponse, error)
	ClaimAll(ctx context.Context, in *ClaimAllRequest, opts ...grpc.CallOption) (*ClaimAllResponse, error)
	PendingEntitlement(ctx context.Context, in *PendingEntitlementRequest, opts ...grpc.CallOption) (*PendingEntitlementResponse, error)
	SetPreference(ctx context.Context, in *SetPreferenceRequest, opts ...grpc.CallOption) (*SetPreferenceResponse, error)
	GetPreference(ctx context.Context, in *GetPreferenceRequest, opts ...grpc.CallOption) (*GetPreferenceResponse, error)
	ReleaseEscrow(ctx context.Context, in *ReleaseEscrowRequest, opts ...grpc.CallOption) (*ReleaseEscrowResponse, error)
	RefundEscrow(ctx context.Context, in *RefundEscrowRequest, opts ...grpc.CallOption) (*RefundEscrowResponse, error)
	// Campaigns and staking
	SubmitCampaign(ctx context.Context, in *SubmitCampaignRequest, opts ...grpc.CallOption) (*SubmitCampaignResponse, error)
	ApproveCampaign(ctx context.Context, in *CampaignActionRequest, opts ...grpc.CallOption) (*CampaignActionResponse, error)
	ActivateCampaign(ctx context.Context, in *CampaignActionRequest, opts ...grpc.CallOption) (*CampaignActionResponse, error)
	PauseCampaign(ctx context.Context, in *CampaignActionRequest, opts ...grpc.CallOption) (*CampaignActionResponse, error)
	ResumeCampaign(ctx context.Context, in *CampaignActionRequest, opts ...grpc.CallOption) (*CampaignActionResponse, error)
	CompleteCampaign(ctx context.Context, in *CampaignActionRequest, opts ...grpc.CallOption) (*CampaignActionResponse, error)
	CancelCampaign(ctx context.Context, in *CampaignActionRequest, opts ...grpc.CallOption) (*CampaignActionResponse, error)
	Stake(ctx context.Context, in *StakeRequest, opts ...grpc.CallOption) (*StakeResponse, error)
	Unstake(ctx context.Context, in *UnstakeRequest, opts ...grpc.CallOption) (*UnstakeResponse, error)
	GetCampaign(ctx context.Context, in *GetCampaignRequest, opts ...grpc.CallOption) (*GetCampaignResponse, error)
	ListCampaigns(ctx context.Context, in *ListCampaignsRequest, opts ...grpc.CallOption) (*ListCampaignsResponse, error)
	// Checkpoint governance
	ScheduleCheckpoint(ctx context.Context, in *ScheduleCheckpointRequest, opts ...grpc.CallOption) (*ScheduleCheckpointResponse, error)
	CastVote(ctx context.Context, in *CastVoteRequest, opts ...grpc.CallOption) (*CastVoteResponse, error)
	FinalizeCheckpoint(ctx context.Context, in *FinalizeCheckpointRequest, opts ...grpc.CallOption) (*FinalizeCheckpointResponse, error)
	ClearHalt(ctx context.Context, in *CampaignActionRequest, opts ...grpc.CallOption) (*CampaignActionResponse, error)
	GetCheckpoint(ctx context.Context, in *GetCheckpointRequest, opts ...grpc.CallOption) (*GetCheckpointResponse, error)
	ListCheckpoints(ctx context.Context, in *ListCheckpointsRequest, opts ...grpc.CallOption) (*ListCheckpointsResponse, error)
}

type donorVaultServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDonorVaultServiceClient(cc grpc.ClientConnInterface) DonorVaultServiceClient {
	return &donorVaultServiceClient{cc}
}

func (c *donorVaultServiceClient) Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DepositResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_Deposit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) Mint(ctx context.Context, in *MintRequest, opts ...grpc.CallOption) (*MintResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MintResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_Mint_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(WithdrawResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_Withdraw_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) Redeem(ctx context.Context, in *RedeemRequest, opts ...grpc.CallOption) (*RedeemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RedeemResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_Redeem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) Approve(ctx context.Context, in *ApproveRequest, opts ...grpc.CallOption) (*ApproveResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApproveResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_Approve_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) Harvest(ctx context.Context, in *HarvestRequest, opts ...grpc.CallOption) (*HarvestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(HarvestResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_Harvest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) SetAdapter(ctx context.Context, in *SetAdapterRequest, opts ...grpc.CallOption) (*SetAdapterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetAdapterResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_SetAdapter_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) PauseVault(ctx context.Context, in *PauseVaultRequest, opts ...grpc.CallOption) (*PauseVaultResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PauseVaultResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_PauseVault_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) ResumeVault(ctx context.Context, in *ResumeVaultRequest, opts ...grpc.CallOption) (*ResumeVaultResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResumeVaultResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_ResumeVault_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) EmergencyShutdown(ctx context.Context, in *EmergencyShutdownRequest, opts ...grpc.CallOption) (*EmergencyShutdownResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EmergencyShutdownResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_EmergencyShutdown_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) ResumeFromEmergency(ctx context.Context, in *ResumeFromEmergencyRequest, opts ...grpc.CallOption) (*ResumeFromEmergencyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResumeFromEmergencyResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_ResumeFromEmergency_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) EmergencyWithdraw(ctx context.Context, in *EmergencyWithdrawRequest, opts ...grpc.CallOption) (*EmergencyWithdrawResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EmergencyWithdrawResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_EmergencyWithdraw_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) GetVault(ctx context.Context, in *GetVaultRequest, opts ...grpc.CallOption) (*GetVaultResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetVaultResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_GetVault_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) Claim(ctx context.Context, in *ClaimRequest, opts ...grpc.CallOption) (*ClaimResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClaimResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_Claim_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) ClaimAll(ctx context.Context, in *ClaimAllRequest, opts ...grpc.CallOption) (*ClaimAllResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClaimAllResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_ClaimAll_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) PendingEntitlement(ctx context.Context, in *PendingEntitlementRequest, opts ...grpc.CallOption) (*PendingEntitlementResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PendingEntitlementResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_PendingEntitlement_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) SetPreference(ctx context.Context, in *SetPreferenceRequest, opts ...grpc.CallOption) (*SetPreferenceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetPreferenceResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_SetPreference_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) GetPreference(ctx context.Context, in *GetPreferenceRequest, opts ...grpc.CallOption) (*GetPreferenceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPreferenceResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_GetPreference_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) ReleaseEscrow(ctx context.Context, in *ReleaseEscrowRequest, opts ...grpc.CallOption) (*ReleaseEscrowResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReleaseEscrowResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_ReleaseEscrow_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) RefundEscrow(ctx context.Context, in *RefundEscrowRequest, opts ...grpc.CallOption) (*RefundEscrowResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RefundEscrowResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_RefundEscrow_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) SubmitCampaign(ctx context.Context, in *SubmitCampaignRequest, opts ...grpc.CallOption) (*SubmitCampaignResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitCampaignResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_SubmitCampaign_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) ApproveCampaign(ctx context.Context, in *CampaignActionRequest, opts ...grpc.CallOption) (*CampaignActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CampaignActionResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_ApproveCampaign_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) ActivateCampaign(ctx context.Context, in *CampaignActionRequest, opts ...grpc.CallOption) (*CampaignActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CampaignActionResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_ActivateCampaign_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) PauseCampaign(ctx context.Context, in *CampaignActionRequest, opts ...grpc.CallOption) (*CampaignActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CampaignActionResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_PauseCampaign_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) ResumeCampaign(ctx context.Context, in *CampaignActionRequest, opts ...grpc.CallOption) (*CampaignActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CampaignActionResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_ResumeCampaign_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) CompleteCampaign(ctx context.Context, in *CampaignActionRequest, opts ...grpc.CallOption) (*CampaignActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CampaignActionResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_CompleteCampaign_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) CancelCampaign(ctx context.Context, in *CampaignActionRequest, opts ...grpc.CallOption) (*CampaignActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CampaignActionResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_CancelCampaign_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) Stake(ctx context.Context, in *StakeRequest, opts ...grpc.CallOption) (*StakeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StakeResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_Stake_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) Unstake(ctx context.Context, in *UnstakeRequest, opts ...grpc.CallOption) (*UnstakeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UnstakeResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_Unstake_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) GetCampaign(ctx context.Context, in *GetCampaignRequest, opts ...grpc.CallOption) (*GetCampaignResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCampaignResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_GetCampaign_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) ListCampaigns(ctx context.Context, in *ListCampaignsRequest, opts ...grpc.CallOption) (*ListCampaignsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListCampaignsResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_ListCampaigns_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) ScheduleCheckpoint(ctx context.Context, in *ScheduleCheckpointRequest, opts ...grpc.CallOption) (*ScheduleCheckpointResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScheduleCheckpointResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_ScheduleCheckpoint_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) CastVote(ctx context.Context, in *CastVoteRequest, opts ...grpc.CallOption) (*CastVoteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CastVoteResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_CastVote_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) FinalizeCheckpoint(ctx context.Context, in *FinalizeCheckpointRequest, opts ...grpc.CallOption) (*FinalizeCheckpointResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FinalizeCheckpointResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_FinalizeCheckpoint_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) ClearHalt(ctx context.Context, in *CampaignActionRequest, opts ...grpc.CallOption) (*CampaignActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CampaignActionResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_ClearHalt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) GetCheckpoint(ctx context.Context, in *GetCheckpointRequest, opts ...grpc.CallOption) (*GetCheckpointResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCheckpointResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_GetCheckpoint_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *donorVaultServiceClient) ListCheckpoints(ctx context.Context, in *ListCheckpointsRequest, opts ...grpc.CallOption) (*ListCheckpointsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListCheckpointsResponse)
	err := c.cc.Invoke(ctx, DonorVaultService_ListCheckpoints_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DonorVaultServiceServer is the server API for DonorVaultService service.
// All implementations must embed UnimplementedDonorVaultServiceServer
// for forward compatibility.
//
// DonorVaultService exposes the vault ledger, payout router, campaign
// lifecycle and checkpoint governance. All monetary amounts travel as
// decimal strings in the vault asset's base units.
type DonorVaultServiceServer interface {
	// Vault ledger
	Deposit(context.Context, *DepositRequest) (*DepositResponse, error)
	Mint(context.Context, *MintRequest) (*MintResponse, error)
	Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error)
	Redeem(context.Context, *RedeemRequest) (*RedeemResponse, error)
	Approve(context.Context, *ApproveRequest) (*ApproveResponse, error)
	Harvest(context.Context, *HarvestRequest) (*HarvestResponse, error)
	SetAdapter(context.Context, *SetAdapterRequest) (*SetAdapterResponse, error)
	PauseVault(context.Context, *PauseVaultRequest) (*PauseVaultResponse, error)
	ResumeVault(context.Context, *ResumeVaultRequest) (*ResumeVaultResponse, error)
	EmergencyShutdown(context.Context, *EmergencyShutdownRequest) (*EmergencyShutdownResponse, error)
	ResumeFromEmergency(context.Context, *ResumeFromEmergencyRequest) (*ResumeFromEmergencyResponse, error)
	EmergencyWithdraw(context.Context, *EmergencyWithdrawRequest) (*EmergencyWithdrawResponse, error)
	GetVault(context.Context, *GetVaultRequest) (*GetVaultResponse, error)
	// Payout router
	Claim(context.Context, *ClaimRequest) (*ClaimResponse, error)
	ClaimAll(context.Context, *ClaimAllRequest) (*ClaimAllResponse, error)
	PendingEntitlement(context.Context, *PendingEntitlementRequest) (*PendingEntitlementResponse, error)
	SetPreference(context.Context, *SetPreferenceRequest) (*SetPreferenceResponse, error)
	GetPreference(context.Context, *GetPreferenceRequest) (*GetPreferenceResponse, error)
	ReleaseEscrow(context.Context, *ReleaseEscrowRequest) (*ReleaseEscrowResponse, error)
	RefundEscrow(context.Context, *RefundEscrowRequest) (*RefundEscrowResponse, error)
	// Campaigns and staking
	SubmitCampaign(context.Context, *SubmitCampaignRequest) (*SubmitCampaignResponse, error)
	ApproveCampaign(context.Context, *CampaignActionRequest) (*CampaignActionResponse, error)
	ActivateCampaign(context.Context, *CampaignActionRequest) (*CampaignActionResponse, error)
	PauseCampaign(context.Context, *CampaignActionRequest) (*CampaignActionResponse, error)
	ResumeCampaign(context.Context, *CampaignActionRequest) (*CampaignActionResponse, error)
	CompleteCampaign(context.Context, *CampaignActionRequest) (*CampaignActionResponse, error)
	CancelCampaign(context.Context, *CampaignActionRequest) (*CampaignActionResponse, error)
	Stake(context.Context, *StakeRequest) (*StakeResponse, error)
	Unstake(context.Context, *UnstakeRequest) (*UnstakeResponse, error)
	GetCampaign(context.Context, *GetCampaignRequest) (*GetCampaignResponse, error)
	ListCampaigns(context.Context, *ListCampaignsRequest) (*ListCampaignsResponse, error)
	// Checkpoint governance
	ScheduleCheckpoint(context.Context, *ScheduleCheckpointRequest) (*ScheduleCheckpointResponse, error)
	CastVote(context.Context, *CastVoteRequest) (*CastVoteResponse, error)
	FinalizeCheckpoint(context.Context, *FinalizeCheckpointRequest) (*FinalizeCheckpointResponse, error)
	ClearHalt(context.Context, *CampaignActionRequest) (*CampaignActionResponse, error)
	GetCheckpoint(context.Context, *GetCheckpointRequest) (*GetCheckpointResponse, error)
	ListCheckpoints(context.Context, *ListCheckpointsRequest) (*ListCheckpointsResponse, error)
	mustEmbedUnimplementedDonorVaultServiceServer()
}

// UnimplementedDonorVaultServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDonorVaultServiceServer struct{}

func (UnimplementedDonorVaultServiceServer) Deposit(context.Context, *DepositRequest) (*DepositResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Deposit not implemented")
}
func (UnimplementedDonorVaultServiceServer) Mint(context.Context, *MintRequest) (*MintResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Mint not implemented")
}
func (UnimplementedDonorVaultServiceServer) Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Withdraw not implemented")
}
func (UnimplementedDonorVaultServiceServer) Redeem(context.Context, *RedeemRequest) (*RedeemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Redeem not implemented")
}
func (UnimplementedDonorVaultServiceServer) Approve(context.Context, *ApproveRequest) (*ApproveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Approve not implemented")
}
func (UnimplementedDonorVaultServiceServer) Harvest(context.Context, *HarvestRequest) (*HarvestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Harvest not implemented")
}
func (UnimplementedDonorVaultServiceServer) SetAdapter(context.Context, *SetAdapterRequest) (*SetAdapterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetAdapter not implemented")
}
func (UnimplementedDonorVaultServiceServer) PauseVault(context.Context, *PauseVaultRequest) (*PauseVaultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PauseVault not implemented")
}
func (UnimplementedDonorVaultServiceServer) ResumeVault(context.Context, *ResumeVaultRequest) (*ResumeVaultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResumeVault not implemented")
}
func (UnimplementedDonorVaultServiceServer) EmergencyShutdown(context.Context, *EmergencyShutdownRequest) (*EmergencyShutdownResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EmergencyShutdown not implemented")
}
func (UnimplementedDonorVaultServiceServer) ResumeFromEmergency(context.Context, *ResumeFromEmergencyRequest) (*ResumeFromEmergencyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResumeFromEmergency not implemented")
}
func (UnimplementedDonorVaultServiceServer) EmergencyWithdraw(context.Context, *EmergencyWithdrawRequest) (*EmergencyWithdrawResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EmergencyWithdraw not implemented")
}
func (UnimplementedDonorVaultServiceServer) GetVault(context.Context, *GetVaultRequest) (*GetVaultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetVault not implemented")
}
func (UnimplementedDonorVaultServiceServer) Claim(context.Context, *ClaimRequest) (*ClaimResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Claim not implemented")
}
func (UnimplementedDonorVaultServiceServer) ClaimAll(context.Context, *ClaimAllRequest) (*ClaimAllResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ClaimAll not implemented")
}
func (UnimplementedDonorVaultServiceServer) PendingEntitlement(context.Context, *PendingEntitlementRequest) (*PendingEntitlementResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PendingEntitlement not implemented")
}
func (UnimplementedDonorVaultServiceServer) SetPreference(context.Context, *SetPreferenceRequest) (*SetPreferenceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetPreference not implemented")
}
func (UnimplementedDonorVaultServiceServer) GetPreference(context.Context, *GetPreferenceRequest) (*GetPreferenceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPreference not implemented")
}
func (UnimplementedDonorVaultServiceServer) ReleaseEscrow(context.Context, *ReleaseEscrowRequest) (*ReleaseEscrowResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReleaseEscrow not implemented")
}
func (UnimplementedDonorVaultServiceServer) RefundEscrow(context.Context, *RefundEscrowRequest) (*RefundEscrowResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefundEscrow not implemented")
}
func (UnimplementedDonorVaultServiceServer) SubmitCampaign(context.Context, *SubmitCampaignRequest) (*SubmitCampaignResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitCampaign not implemented")
}
func (UnimplementedDonorVaultServiceServer) ApproveCampaign(context.Context, *CampaignActionRequest) (*CampaignActionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ApproveCampaign not implemented")
}
func (UnimplementedDonorVaultServiceServer) ActivateCampaign(context.Context, *CampaignActionRequest) (*CampaignActionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ActivateCampaign not implemented")
}
func (UnimplementedDonorVaultServiceServer) PauseCampaign(context.Context, *CampaignActionRequest) (*CampaignActionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PauseCampaign not implemented")
}
func (UnimplementedDonorVaultServiceServer) ResumeCampaign(context.Context, *CampaignActionRequest) (*CampaignActionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResumeCampaign not implemented")
}
func (UnimplementedDonorVaultServiceServer) CompleteCampaign(context.Context, *CampaignActionRequest) (*CampaignActionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CompleteCampaign not implemented")
}
func (UnimplementedDonorVaultServiceServer) CancelCampaign(context.Context, *CampaignActionRequest) (*CampaignActionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelCampaign not implemented")
}
func (UnimplementedDonorVaultServiceServer) Stake(context.Context, *StakeRequest) (*StakeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Stake not implemented")
}
func (UnimplementedDonorVaultServiceServer) Unstake(context.Context, *UnstakeRequest) (*UnstakeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Unstake not implemented")
}
func (UnimplementedDonorVaultServiceServer) GetCampaign(context.Context, *GetCampaignRequest) (*GetCampaignResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCampaign not implemented")
}
func (UnimplementedDonorVaultServiceServer) ListCampaigns(context.Context, *ListCampaignsRequest) (*ListCampaignsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCampaigns not implemented")
}
func (UnimplementedDonorVaultServiceServer) ScheduleCheckpoint(context.Context, *ScheduleCheckpointRequest) (*ScheduleCheckpointResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ScheduleCheckpoint not implemented")
}
func (UnimplementedDonorVaultServiceServer) CastVote(context.Context, *CastVoteRequest) (*CastVoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CastVote not implemented")
}
func (UnimplementedDonorVaultServiceServer) FinalizeCheckpoint(context.Context, *FinalizeCheckpointRequest) (*FinalizeCheckpointResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FinalizeCheckpoint not implemented")
}
func (UnimplementedDonorVaultServiceServer) ClearHalt(context.Context, *CampaignActionRequest) (*CampaignActionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ClearHalt not implemented")
}
func (UnimplementedDonorVaultServiceServer) GetCheckpoint(context.Context, *GetCheckpointRequest) (*GetCheckpointResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCheckpoint not implemented")
}
func (UnimplementedDonorVaultServiceServer) ListCheckpoints(context.Context, *ListCheckpointsRequest) (*ListCheckpointsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCheckpoints not implemented")
}
func (UnimplementedDonorVaultServiceServer) mustEmbedUnimplementedDonorVaultServiceServer() {}
func (UnimplementedDonorVaultServiceServer) testEmbeddedByValue()                           {}

// UnsafeDonorVaultServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DonorVaultServiceServer will
// result in compilation errors.
type UnsafeDonorVaultServiceServer interface {
	mustEmbedUnimplementedDonorVaultServiceServer()
}

func RegisterDonorVaultServiceServer(s grpc.ServiceRegistrar, srv DonorVaultServiceServer) {
	// If the following call panics, it indicates UnimplementedDonorVaultServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DonorVaultService_ServiceDesc, srv)
}

func _DonorVaultService_Deposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_Deposit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).Deposit(ctx, req.(*DepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_Mint_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MintRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).Mint(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_Mint_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).Mint(ctx, req.(*MintRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_Withdraw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WithdrawRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).Withdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_Withdraw_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).Withdraw(ctx, req.(*WithdrawRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_Redeem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RedeemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).Redeem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_Redeem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).Redeem(ctx, req.(*RedeemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_Approve_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).Approve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_Approve_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).Approve(ctx, req.(*ApproveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_Harvest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HarvestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).Harvest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_Harvest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).Harvest(ctx, req.(*HarvestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_SetAdapter_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetAdapterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).SetAdapter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_SetAdapter_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).SetAdapter(ctx, req.(*SetAdapterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_PauseVault_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PauseVaultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).PauseVault(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_PauseVault_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).PauseVault(ctx, req.(*PauseVaultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_ResumeVault_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResumeVaultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).ResumeVault(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_ResumeVault_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).ResumeVault(ctx, req.(*ResumeVaultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_EmergencyShutdown_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EmergencyShutdownRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).EmergencyShutdown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_EmergencyShutdown_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).EmergencyShutdown(ctx, req.(*EmergencyShutdownRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_ResumeFromEmergency_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResumeFromEmergencyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).ResumeFromEmergency(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_ResumeFromEmergency_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).ResumeFromEmergency(ctx, req.(*ResumeFromEmergencyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_EmergencyWithdraw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EmergencyWithdrawRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).EmergencyWithdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_EmergencyWithdraw_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).EmergencyWithdraw(ctx, req.(*EmergencyWithdrawRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_GetVault_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetVaultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).GetVault(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_GetVault_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).GetVault(ctx, req.(*GetVaultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_Claim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClaimRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).Claim(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_Claim_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).Claim(ctx, req.(*ClaimRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_ClaimAll_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClaimAllRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).ClaimAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_ClaimAll_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).ClaimAll(ctx, req.(*ClaimAllRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_PendingEntitlement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PendingEntitlementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).PendingEntitlement(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_PendingEntitlement_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).PendingEntitlement(ctx, req.(*PendingEntitlementRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_SetPreference_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetPreferenceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).SetPreference(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_SetPreference_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).SetPreference(ctx, req.(*SetPreferenceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_GetPreference_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPreferenceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).GetPreference(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_GetPreference_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).GetPreference(ctx, req.(*GetPreferenceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_ReleaseEscrow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReleaseEscrowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).ReleaseEscrow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_ReleaseEscrow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).ReleaseEscrow(ctx, req.(*ReleaseEscrowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_RefundEscrow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RefundEscrowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).RefundEscrow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_RefundEscrow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).RefundEscrow(ctx, req.(*RefundEscrowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_SubmitCampaign_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitCampaignRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).SubmitCampaign(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_SubmitCampaign_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).SubmitCampaign(ctx, req.(*SubmitCampaignRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_ApproveCampaign_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CampaignActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).ApproveCampaign(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_ApproveCampaign_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).ApproveCampaign(ctx, req.(*CampaignActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_ActivateCampaign_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CampaignActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).ActivateCampaign(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_ActivateCampaign_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).ActivateCampaign(ctx, req.(*CampaignActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_PauseCampaign_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CampaignActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).PauseCampaign(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_PauseCampaign_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).PauseCampaign(ctx, req.(*CampaignActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_ResumeCampaign_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CampaignActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).ResumeCampaign(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_ResumeCampaign_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).ResumeCampaign(ctx, req.(*CampaignActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_CompleteCampaign_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CampaignActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).CompleteCampaign(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_CompleteCampaign_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).CompleteCampaign(ctx, req.(*CampaignActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_CancelCampaign_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CampaignActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).CancelCampaign(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_CancelCampaign_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).CancelCampaign(ctx, req.(*CampaignActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_Stake_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StakeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).Stake(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_Stake_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).Stake(ctx, req.(*StakeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_Unstake_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UnstakeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).Unstake(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_Unstake_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).Unstake(ctx, req.(*UnstakeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_GetCampaign_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCampaignRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).GetCampaign(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_GetCampaign_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).GetCampaign(ctx, req.(*GetCampaignRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_ListCampaigns_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCampaignsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).ListCampaigns(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_ListCampaigns_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).ListCampaigns(ctx, req.(*ListCampaignsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_ScheduleCheckpoint_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScheduleCheckpointRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).ScheduleCheckpoint(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_ScheduleCheckpoint_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).ScheduleCheckpoint(ctx, req.(*ScheduleCheckpointRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_CastVote_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CastVoteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).CastVote(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_CastVote_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).CastVote(ctx, req.(*CastVoteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_FinalizeCheckpoint_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FinalizeCheckpointRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).FinalizeCheckpoint(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_FinalizeCheckpoint_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).FinalizeCheckpoint(ctx, req.(*FinalizeCheckpointRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_ClearHalt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CampaignActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).ClearHalt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_ClearHalt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).ClearHalt(ctx, req.(*CampaignActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_GetCheckpoint_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCheckpointRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).GetCheckpoint(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_GetCheckpoint_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).GetCheckpoint(ctx, req.(*GetCheckpointRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DonorVaultService_ListCheckpoints_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCheckpointsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DonorVaultServiceServer).ListCheckpoints(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DonorVaultService_ListCheckpoints_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DonorVaultServiceServer).ListCheckpoints(ctx, req.(*ListCheckpointsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DonorVaultService_ServiceDesc is the grpc.ServiceDesc for DonorVaultService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DonorVaultService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "donorvault.v1.DonorVaultService",
	HandlerType: (*DonorVaultServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Deposit",
			Handler:    _DonorVaultService_Deposit_Handler,
		},
		{
			MethodName: "Mint",
			Handler:    _DonorVaultService_Mint_Handler,
		},
		{
			MethodName: "Withdraw",
			Handler:    _DonorVaultService_Withdraw_Handler,
		},
		{
			MethodName: "Redeem",
			Handler:    _DonorVaultService_Redeem_Handler,
		},
		{
			MethodName: "Approve",
			Handler:    _DonorVaultService_Approve_Handler,
		},
		{
			MethodName: "Harvest",
			Handler:    _DonorVaultService_Harvest_Handler,
		},
		{
			MethodName: "SetAdapter",
			Handler:    _DonorVaultService_SetAdapter_Handler,
		},
		{
			MethodName: "PauseVault",
			Handler:    _DonorVaultService_PauseVault_Handler,
		},
		{
			MethodName: "ResumeVault",
			Handler:    _DonorVaultService_ResumeVault_Handler,
		},
		{
			MethodName: "EmergencyShutdown",
			Handler:    _DonorVaultService_EmergencyShutdown_Handler,
		},
		{
			MethodName: "ResumeFromEmergency",
			Handler:    _DonorVaultService_ResumeFromEmergency_Handler,
		},
		{
			MethodName: "EmergencyWithdraw",
			Handler:    _DonorVaultService_EmergencyWithdraw_Handler,
		},
		{
			MethodName: "GetVault",
			Handler:    _DonorVaultService_GetVault_Handler,
		},
		{
			MethodName: "Claim",
			Handler:    _DonorVaultService_Claim_Handler,
		},
		{
			MethodName: "ClaimAll",
			Handler:    _DonorVaultService_ClaimAll_Handler,
		},
		{
			MethodName: "PendingEntitlement",
			Handler:    _DonorVaultService_PendingEntitlement_Handler,
		},
		{
			MethodName: "SetPreference",
			Handler:    _DonorVaultService_SetPreference_Handler,
		},
		{
			MethodName: "GetPreference",
			Handler:    _DonorVaultService_GetPreference_Handler,
		},
		{
			MethodName: "ReleaseEscrow",
			Handler:    _DonorVaultService_ReleaseEscrow_Handler,
		},
		{
			MethodName: "RefundEscrow",
			Handler:    _DonorVaultService_RefundEscrow_Handler,
		},
		{
			MethodName: "SubmitCampaign",
			Handler:    _DonorVaultService_SubmitCampaign_Handler,
		},
		{
			MethodName: "ApproveCampaign",
			Handler:    _DonorVaultService_ApproveCampaign_Handler,
		},
		{
			MethodName: "ActivateCampaign",
			Handler:    _DonorVaultService_ActivateCampaign_Handler,
		},
		{
			MethodName: "PauseCampaign",
			Handler:    _DonorVaultService_PauseCampaign_Handler,
		},
		{
			MethodName: "ResumeCampaign",
			Handler:    _DonorVaultService_ResumeCampaign_Handler,
		},
		{
			MethodName: "CompleteCampaign",
			Handler:    _DonorVaultService_CompleteCampaign_Handler,
		},
		{
			MethodName: "CancelCampaign",
			Handler:    _DonorVaultService_CancelCampaign_Handler,
		},
		{
			MethodName: "Stake",
			Handler:    _DonorVaultService_Stake_Handler,
		},
		{
			MethodName: "Unstake",
			Handler:    _DonorVaultService_Unstake_Handler,
		},
		{
			MethodName: "GetCampaign",
			Handler:    _DonorVaultService_GetCampaign_Handler,
		},
		{
			MethodName: "ListCampaigns",
			Handler:    _DonorVaultService_ListCampaigns_Handler,
		},
		{
			MethodName: "ScheduleCheckpoint",
			Handler:    _DonorVaultService_ScheduleCheckpoint_Handler,
		},
		{
			MethodName: "CastVote",
			Handler:    _DonorVaultService_CastVote_Handler,
		},
		{
			MethodName: "FinalizeCheckpoint",
			Handler:    _DonorVaultService_FinalizeCheckpoint_Handler,
		},
		{
			MethodName: "ClearHalt",
			Handler:    _DonorVaultService_ClearHalt_Handler,
		},
		{
			MethodName: "GetCheckpoint",
			Handler:    _DonorVaultService_GetCheckpoint_Handler,
		},
		{
			MethodName: "ListCheckpoints",
			Handler:    _DonorVaultService_ListCheckpoints_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "donorvault/v1/donorvault.proto",
}
