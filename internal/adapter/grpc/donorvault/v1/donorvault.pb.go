// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: donorvault/v1/donorvault.proto

package donorvaultv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type VaultMode int32

const (
	VaultMode_VAULT_MODE_UNSPECIFIED        VaultMode = 0
	VaultMode_VAULT_MODE_NORMAL             VaultMode = 1
	VaultMode_VAULT_MODE_PAUSED             VaultMode = 2
	VaultMode_VAULT_MODE_EMERGENCY_SHUTDOWN VaultMode = 3
)

// Enum value maps for VaultMode.
var (
	VaultMode_name = map[int32]string{
		0: "VAULT_MODE_UNSPECIFIED",
		1: "VAULT_MODE_NORMAL",
		2: "VAULT_MODE_PAUSED",
		3: "VAULT_MODE_EMERGENCY_SHUTDOWN",
	}
	VaultMode_value = map[string]int32{
		"VAULT_MODE_UNSPECIFIED":        0,
		"VAULT_MODE_NORMAL":             1,
		"VAULT_MODE_PAUSED":             2,
		"VAULT_MODE_EMERGENCY_SHUTDOWN": 3,
	}
)

func (x VaultMode) Enum() *VaultMode {
	p := new(VaultMode)
	*p = x
	return p
}

func (x VaultMode) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (VaultMode) Descriptor() protoreflect.EnumDescriptor {
	return file_donorvault_v1_donorvault_proto_enumTypes[0].Descriptor()
}

func (VaultMode) Type() protoreflect.EnumType {
	return &file_donorvault_v1_donorvault_proto_enumTypes[0]
}

func (x VaultMode) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use VaultMode.Descriptor instead.
func (VaultMode) EnumDescriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{0}
}

type CampaignStatus int32

const (
	CampaignStatus_CAMPAIGN_STATUS_UNSPECIFIED CampaignStatus = 0
	CampaignStatus_CAMPAIGN_STATUS_SUBMITTED   CampaignStatus = 1
	CampaignStatus_CAMPAIGN_STATUS_APPROVED    CampaignStatus = 2
	CampaignStatus_CAMPAIGN_STATUS_ACTIVE      CampaignStatus = 3
	CampaignStatus_CAMPAIGN_STATUS_PAUSED      CampaignStatus = 4
	CampaignStatus_CAMPAIGN_STATUS_COMPLETED   CampaignStatus = 5
	CampaignStatus_CAMPAIGN_STATUS_CANCELLED   CampaignStatus = 6
)

// Enum value maps for CampaignStatus.
var (
	CampaignStatus_name = map[int32]string{
		0: "CAMPAIGN_STATUS_UNSPECIFIED",
		1: "CAMPAIGN_STATUS_SUBMITTED",
		2: "CAMPAIGN_STATUS_APPROVED",
		3: "CAMPAIGN_STATUS_ACTIVE",
		4: "CAMPAIGN_STATUS_PAUSED",
		5: "CAMPAIGN_STATUS_COMPLETED",
		6: "CAMPAIGN_STATUS_CANCELLED",
	}
	CampaignStatus_value = map[string]int32{
		"CAMPAIGN_STATUS_UNSPECIFIED": 0,
		"CAMPAIGN_STATUS_SUBMITTED":   1,
		"CAMPAIGN_STATUS_APPROVED":    2,
		"CAMPAIGN_STATUS_ACTIVE":      3,
		"CAMPAIGN_STATUS_PAUSED":      4,
		"CAMPAIGN_STATUS_COMPLETED":   5,
		"CAMPAIGN_STATUS_CANCELLED":   6,
	}
)

func (x CampaignStatus) Enum() *CampaignStatus {
	p := new(CampaignStatus)
	*p = x
	return p
}

func (x CampaignStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (CampaignStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_donorvault_v1_donorvault_proto_enumTypes[1].Descriptor()
}

func (CampaignStatus) Type() protoreflect.EnumType {
	return &file_donorvault_v1_donorvault_proto_enumTypes[1]
}

func (x CampaignStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use CampaignStatus.Descriptor instead.
func (CampaignStatus) EnumDescriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{1}
}

type CheckpointStatus int32

const (
	CheckpointStatus_CHECKPOINT_STATUS_UNSPECIFIED CheckpointStatus = 0
	CheckpointStatus_CHECKPOINT_STATUS_PENDING     CheckpointStatus = 1
	CheckpointStatus_CHECKPOINT_STATUS_PASSED      CheckpointStatus = 2
	CheckpointStatus_CHECKPOINT_STATUS_FAILED      CheckpointStatus = 3
)

// Enum value maps for CheckpointStatus.
var (
	CheckpointStatus_name = map[int32]string{
		0: "CHECKPOINT_STATUS_UNSPECIFIED",
		1: "CHECKPOINT_STATUS_PENDING",
		2: "CHECKPOINT_STATUS_PASSED",
		3: "CHECKPOINT_STATUS_FAILED",
	}
	CheckpointStatus_value = map[string]int32{
		"CHECKPOINT_STATUS_UNSPECIFIED": 0,
		"CHECKPOINT_STATUS_PENDING":     1,
		"CHECKPOINT_STATUS_PASSED":      2,
		"CHECKPOINT_STATUS_FAILED":      3,
	}
)

func (x CheckpointStatus) Enum() *CheckpointStatus {
	p := new(CheckpointStatus)
	*p = x
	return p
}

func (x CheckpointStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (CheckpointStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_donorvault_v1_donorvault_proto_enumTypes[2].Descriptor()
}

func (CheckpointStatus) Type() protoreflect.EnumType {
	return &file_donorvault_v1_donorvault_proto_enumTypes[2]
}

func (x CheckpointStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use CheckpointStatus.Descriptor instead.
func (CheckpointStatus) EnumDescriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{2}
}

type Vault struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name              string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Asset             string                 `protobuf:"bytes,3,opt,name=asset,proto3" json:"asset,omitempty"`
	CashBalance       string                 `protobuf:"bytes,4,opt,name=cash_balance,json=cashBalance,proto3" json:"cash_balance,omitempty"`
	SharesOutstanding string                 `protobuf:"bytes,5,opt,name=shares_outstanding,json=sharesOutstanding,proto3" json:"shares_outstanding,omitempty"`
	TotalAssets       string                 `protobuf:"bytes,6,opt,name=total_assets,json=totalAssets,proto3" json:"total_assets,omitempty"`
	CashBufferBps     int64                  `protobuf:"varint,7,opt,name=cash_buffer_bps,json=cashBufferBps,proto3" json:"cash_buffer_bps,omitempty"`
	SlippageBps       int64                  `protobuf:"varint,8,opt,name=slippage_bps,json=slippageBps,proto3" json:"slippage_bps,omitempty"`
	MaxLossBps        int64                  `protobuf:"varint,9,opt,name=max_loss_bps,json=maxLossBps,proto3" json:"max_loss_bps,omitempty"`
	ProtocolFeeBps    int64                  `protobuf:"varint,10,opt,name=protocol_fee_bps,json=protocolFeeBps,proto3" json:"protocol_fee_bps,omitempty"`
	ActiveAdapterId   string                 `protobuf:"bytes,11,opt,name=active_adapter_id,json=activeAdapterId,proto3" json:"active_adapter_id,omitempty"`
	TotalProfit       string                 `protobuf:"bytes,12,opt,name=total_profit,json=totalProfit,proto3" json:"total_profit,omitempty"`
	TotalLoss         string                 `protobuf:"bytes,13,opt,name=total_loss,json=totalLoss,proto3" json:"total_loss,omitempty"`
	LastHarvestTime   *timestamppb.Timestamp `protobuf:"bytes,14,opt,name=last_harvest_time,json=lastHarvestTime,proto3" json:"last_harvest_time,omitempty"`
	Mode              VaultMode              `protobuf:"varint,15,opt,name=mode,proto3,enum=donorvault.v1.VaultMode" json:"mode,omitempty"`
	LastDivestError   string                 `protobuf:"bytes,16,opt,name=last_divest_error,json=lastDivestError,proto3" json:"last_divest_error,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Vault) Reset() {
	*x = Vault{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Vault) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Vault) ProtoMessage() {}

func (x *Vault) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Vault.ProtoReflect.Descriptor instead.
func (*Vault) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{0}
}

func (x *Vault) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Vault) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Vault) GetAsset() string {
	if x != nil {
		return x.Asset
	}
	return ""
}

func (x *Vault) GetCashBalance() string {
	if x != nil {
		return x.CashBalance
	}
	return ""
}

func (x *Vault) GetSharesOutstanding() string {
	if x != nil {
		return x.SharesOutstanding
	}
	return ""
}

func (x *Vault) GetTotalAssets() string {
	if x != nil {
		return x.TotalAssets
	}
	return ""
}

func (x *Vault) GetCashBufferBps() int64 {
	if x != nil {
		return x.CashBufferBps
	}
	return 0
}

func (x *Vault) GetSlippageBps() int64 {
	if x != nil {
		return x.SlippageBps
	}
	return 0
}

func (x *Vault) GetMaxLossBps() int64 {
	if x != nil {
		return x.MaxLossBps
	}
	return 0
}

func (x *Vault) GetProtocolFeeBps() int64 {
	if x != nil {
		return x.ProtocolFeeBps
	}
	return 0
}

func (x *Vault) GetActiveAdapterId() string {
	if x != nil {
		return x.ActiveAdapterId
	}
	return ""
}

func (x *Vault) GetTotalProfit() string {
	if x != nil {
		return x.TotalProfit
	}
	return ""
}

func (x *Vault) GetTotalLoss() string {
	if x != nil {
		return x.TotalLoss
	}
	return ""
}

func (x *Vault) GetLastHarvestTime() *timestamppb.Timestamp {
	if x != nil {
		return x.LastHarvestTime
	}
	return nil
}

func (x *Vault) GetMode() VaultMode {
	if x != nil {
		return x.Mode
	}
	return VaultMode_VAULT_MODE_UNSPECIFIED
}

func (x *Vault) GetLastDivestError() string {
	if x != nil {
		return x.LastDivestError
	}
	return ""
}

type Campaign struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Curator       string                 `protobuf:"bytes,3,opt,name=curator,proto3" json:"curator,omitempty"`
	Status        CampaignStatus         `protobuf:"varint,4,opt,name=status,proto3,enum=donorvault.v1.CampaignStatus" json:"status,omitempty"`
	TotalReceived string                 `protobuf:"bytes,5,opt,name=total_received,json=totalReceived,proto3" json:"total_received,omitempty"`
	StakeAmount   string                 `protobuf:"bytes,6,opt,name=stake_amount,json=stakeAmount,proto3" json:"stake_amount,omitempty"`
	FundingTarget string                 `protobuf:"bytes,7,opt,name=funding_target,json=fundingTarget,proto3" json:"funding_target,omitempty"`
	PayoutsHalted bool                   `protobuf:"varint,8,opt,name=payouts_halted,json=payoutsHalted,proto3" json:"payouts_halted,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Campaign) Reset() {
	*x = Campaign{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Campaign) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Campaign) ProtoMessage() {}

func (x *Campaign) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Campaign.ProtoReflect.Descriptor instead.
func (*Campaign) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{1}
}

func (x *Campaign) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Campaign) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Campaign) GetCurator() string {
	if x != nil {
		return x.Curator
	}
	return ""
}

func (x *Campaign) GetStatus() CampaignStatus {
	if x != nil {
		return x.Status
	}
	return CampaignStatus_CAMPAIGN_STATUS_UNSPECIFIED
}

func (x *Campaign) GetTotalReceived() string {
	if x != nil {
		return x.TotalReceived
	}
	return ""
}

func (x *Campaign) GetStakeAmount() string {
	if x != nil {
		return x.StakeAmount
	}
	return ""
}

func (x *Campaign) GetFundingTarget() string {
	if x != nil {
		return x.FundingTarget
	}
	return ""
}

func (x *Campaign) GetPayoutsHalted() bool {
	if x != nil {
		return x.PayoutsHalted
	}
	return false
}

func (x *Campaign) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type Checkpoint struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CampaignId         string                 `protobuf:"bytes,2,opt,name=campaign_id,json=campaignId,proto3" json:"campaign_id,omitempty"`
	Title              string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	VoteDeadline       *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=vote_deadline,json=voteDeadline,proto3" json:"vote_deadline,omitempty"`
	QuorumBps          int64                  `protobuf:"varint,5,opt,name=quorum_bps,json=quorumBps,proto3" json:"quorum_bps,omitempty"`
	SnapshotSeq        int64                  `protobuf:"varint,6,opt,name=snapshot_seq,json=snapshotSeq,proto3" json:"snapshot_seq,omitempty"`
	VotesFor           string                 `protobuf:"bytes,7,opt,name=votes_for,json=votesFor,proto3" json:"votes_for,omitempty"`
	VotesAgainst       string                 `protobuf:"bytes,8,opt,name=votes_against,json=votesAgainst,proto3" json:"votes_against,omitempty"`
	TotalEligiblePower string                 `protobuf:"bytes,9,opt,name=total_eligible_power,json=totalEligiblePower,proto3" json:"total_eligible_power,omitempty"`
	Status             CheckpointStatus       `protobuf:"varint,10,opt,name=status,proto3,enum=donorvault.v1.CheckpointStatus" json:"status,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Checkpoint) Reset() {
	*x = Checkpoint{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Checkpoint) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Checkpoint) ProtoMessage() {}

func (x *Checkpoint) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Checkpoint.ProtoReflect.Descriptor instead.
func (*Checkpoint) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{2}
}

func (x *Checkpoint) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Checkpoint) GetCampaignId() string {
	if x != nil {
		return x.CampaignId
	}
	return ""
}

func (x *Checkpoint) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Checkpoint) GetVoteDeadline() *timestamppb.Timestamp {
	if x != nil {
		return x.VoteDeadline
	}
	return nil
}

func (x *Checkpoint) GetQuorumBps() int64 {
	if x != nil {
		return x.QuorumBps
	}
	return 0
}

func (x *Checkpoint) GetSnapshotSeq() int64 {
	if x != nil {
		return x.SnapshotSeq
	}
	return 0
}

func (x *Checkpoint) GetVotesFor() string {
	if x != nil {
		return x.VotesFor
	}
	return ""
}

func (x *Checkpoint) GetVotesAgainst() string {
	if x != nil {
		return x.VotesAgainst
	}
	return ""
}

func (x *Checkpoint) GetTotalEligiblePower() string {
	if x != nil {
		return x.TotalEligiblePower
	}
	return ""
}

func (x *Checkpoint) GetStatus() CheckpointStatus {
	if x != nil {
		return x.Status
	}
	return CheckpointStatus_CHECKPOINT_STATUS_UNSPECIFIED
}

type DepositRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Caller   string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	VaultId  string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	Assets   string                 `protobuf:"bytes,3,opt,name=assets,proto3" json:"assets,omitempty"`
	Receiver string                 `protobuf:"bytes,4,opt,name=receiver,proto3" json:"receiver,omitempty"`
	// When set, locks the minted shares and counts them as supporter stake.
	CampaignId    string `protobuf:"bytes,5,opt,name=campaign_id,json=campaignId,proto3" json:"campaign_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DepositRequest) Reset() {
	*x = DepositRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DepositRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DepositRequest) ProtoMessage() {}

func (x *DepositRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DepositRequest.ProtoReflect.Descriptor instead.
func (*DepositRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{3}
}

func (x *DepositRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *DepositRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *DepositRequest) GetAssets() string {
	if x != nil {
		return x.Assets
	}
	return ""
}

func (x *DepositRequest) GetReceiver() string {
	if x != nil {
		return x.Receiver
	}
	return ""
}

func (x *DepositRequest) GetCampaignId() string {
	if x != nil {
		return x.CampaignId
	}
	return ""
}

type DepositResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SharesMinted  string                 `protobuf:"bytes,1,opt,name=shares_minted,json=sharesMinted,proto3" json:"shares_minted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DepositResponse) Reset() {
	*x = DepositResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DepositResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DepositResponse) ProtoMessage() {}

func (x *DepositResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DepositResponse.ProtoReflect.Descriptor instead.
func (*DepositResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{4}
}

func (x *DepositResponse) GetSharesMinted() string {
	if x != nil {
		return x.SharesMinted
	}
	return ""
}

type MintRequest struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	Caller  string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	VaultId string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	// Exact shares to mint; the asset cost is derived at the current rate.
	Shares        string `protobuf:"bytes,3,opt,name=shares,proto3" json:"shares,omitempty"`
	Receiver      string `protobuf:"bytes,4,opt,name=receiver,proto3" json:"receiver,omitempty"`
	CampaignId    string `protobuf:"bytes,5,opt,name=campaign_id,json=campaignId,proto3" json:"campaign_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MintRequest) Reset() {
	*x = MintRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MintRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MintRequest) ProtoMessage() {}

func (x *MintRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MintRequest.ProtoReflect.Descriptor instead.
func (*MintRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{5}
}

func (x *MintRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *MintRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *MintRequest) GetShares() string {
	if x != nil {
		return x.Shares
	}
	return ""
}

func (x *MintRequest) GetReceiver() string {
	if x != nil {
		return x.Receiver
	}
	return ""
}

func (x *MintRequest) GetCampaignId() string {
	if x != nil {
		return x.CampaignId
	}
	return ""
}

type MintResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	AssetsDeposited string                 `protobuf:"bytes,1,opt,name=assets_deposited,json=assetsDeposited,proto3" json:"assets_deposited,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *MintResponse) Reset() {
	*x = MintResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MintResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MintResponse) ProtoMessage() {}

func (x *MintResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MintResponse.ProtoReflect.Descriptor instead.
func (*MintResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{6}
}

func (x *MintResponse) GetAssetsDeposited() string {
	if x != nil {
		return x.AssetsDeposited
	}
	return ""
}

type WithdrawRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	VaultId       string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	Assets        string                 `protobuf:"bytes,3,opt,name=assets,proto3" json:"assets,omitempty"`
	Receiver      string                 `protobuf:"bytes,4,opt,name=receiver,proto3" json:"receiver,omitempty"`
	Owner         string                 `protobuf:"bytes,5,opt,name=owner,proto3" json:"owner,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WithdrawRequest) Reset() {
	*x = WithdrawRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WithdrawRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WithdrawRequest) ProtoMessage() {}

func (x *WithdrawRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WithdrawRequest.ProtoReflect.Descriptor instead.
func (*WithdrawRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{7}
}

func (x *WithdrawRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *WithdrawRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *WithdrawRequest) GetAssets() string {
	if x != nil {
		return x.Assets
	}
	return ""
}

func (x *WithdrawRequest) GetReceiver() string {
	if x != nil {
		return x.Receiver
	}
	return ""
}

func (x *WithdrawRequest) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

type WithdrawResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SharesBurned  string                 `protobuf:"bytes,1,opt,name=shares_burned,json=sharesBurned,proto3" json:"shares_burned,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WithdrawResponse) Reset() {
	*x = WithdrawResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WithdrawResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WithdrawResponse) ProtoMessage() {}

func (x *WithdrawResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WithdrawResponse.ProtoReflect.Descriptor instead.
func (*WithdrawResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{8}
}

func (x *WithdrawResponse) GetSharesBurned() string {
	if x != nil {
		return x.SharesBurned
	}
	return ""
}

type RedeemRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	VaultId       string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	Shares        string                 `protobuf:"bytes,3,opt,name=shares,proto3" json:"shares,omitempty"`
	Receiver      string                 `protobuf:"bytes,4,opt,name=receiver,proto3" json:"receiver,omitempty"`
	Owner         string                 `protobuf:"bytes,5,opt,name=owner,proto3" json:"owner,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RedeemRequest) Reset() {
	*x = RedeemRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RedeemRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RedeemRequest) ProtoMessage() {}

func (x *RedeemRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RedeemRequest.ProtoReflect.Descriptor instead.
func (*RedeemRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{9}
}

func (x *RedeemRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *RedeemRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *RedeemRequest) GetShares() string {
	if x != nil {
		return x.Shares
	}
	return ""
}

func (x *RedeemRequest) GetReceiver() string {
	if x != nil {
		return x.Receiver
	}
	return ""
}

func (x *RedeemRequest) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

type RedeemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AssetsPaid    string                 `protobuf:"bytes,1,opt,name=assets_paid,json=assetsPaid,proto3" json:"assets_paid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RedeemResponse) Reset() {
	*x = RedeemResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RedeemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RedeemResponse) ProtoMessage() {}

func (x *RedeemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RedeemResponse.ProtoReflect.Descriptor instead.
func (*RedeemResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{10}
}

func (x *RedeemResponse) GetAssetsPaid() string {
	if x != nil {
		return x.AssetsPaid
	}
	return ""
}

type ApproveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	VaultId       string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	Spender       string                 `protobuf:"bytes,3,opt,name=spender,proto3" json:"spender,omitempty"`
	Shares        string                 `protobuf:"bytes,4,opt,name=shares,proto3" json:"shares,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveRequest) Reset() {
	*x = ApproveRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveRequest) ProtoMessage() {}

func (x *ApproveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveRequest.ProtoReflect.Descriptor instead.
func (*ApproveRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{11}
}

func (x *ApproveRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *ApproveRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *ApproveRequest) GetSpender() string {
	if x != nil {
		return x.Spender
	}
	return ""
}

func (x *ApproveRequest) GetShares() string {
	if x != nil {
		return x.Shares
	}
	return ""
}

type ApproveResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveResponse) Reset() {
	*x = ApproveResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveResponse) ProtoMessage() {}

func (x *ApproveResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveResponse.ProtoReflect.Descriptor instead.
func (*ApproveResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{12}
}

type HarvestRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	VaultId       string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HarvestRequest) Reset() {
	*x = HarvestRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HarvestRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HarvestRequest) ProtoMessage() {}

func (x *HarvestRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HarvestRequest.ProtoReflect.Descriptor instead.
func (*HarvestRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{13}
}

func (x *HarvestRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *HarvestRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

type HarvestResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profit        string                 `protobuf:"bytes,1,opt,name=profit,proto3" json:"profit,omitempty"`
	Loss          string                 `protobuf:"bytes,2,opt,name=loss,proto3" json:"loss,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HarvestResponse) Reset() {
	*x = HarvestResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HarvestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HarvestResponse) ProtoMessage() {}

func (x *HarvestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HarvestResponse.ProtoReflect.Descriptor instead.
func (*HarvestResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{14}
}

func (x *HarvestResponse) GetProfit() string {
	if x != nil {
		return x.Profit
	}
	return ""
}

func (x *HarvestResponse) GetLoss() string {
	if x != nil {
		return x.Loss
	}
	return ""
}

type SetAdapterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	VaultId       string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	AdapterId     string                 `protobuf:"bytes,3,opt,name=adapter_id,json=adapterId,proto3" json:"adapter_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetAdapterRequest) Reset() {
	*x = SetAdapterRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetAdapterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetAdapterRequest) ProtoMessage() {}

func (x *SetAdapterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetAdapterRequest.ProtoReflect.Descriptor instead.
func (*SetAdapterRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{15}
}

func (x *SetAdapterRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *SetAdapterRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *SetAdapterRequest) GetAdapterId() string {
	if x != nil {
		return x.AdapterId
	}
	return ""
}

type SetAdapterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetAdapterResponse) Reset() {
	*x = SetAdapterResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetAdapterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetAdapterResponse) ProtoMessage() {}

func (x *SetAdapterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetAdapterResponse.ProtoReflect.Descriptor instead.
func (*SetAdapterResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{16}
}

type PauseVaultRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	VaultId       string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PauseVaultRequest) Reset() {
	*x = PauseVaultRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PauseVaultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PauseVaultRequest) ProtoMessage() {}

func (x *PauseVaultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PauseVaultRequest.ProtoReflect.Descriptor instead.
func (*PauseVaultRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{17}
}

func (x *PauseVaultRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *PauseVaultRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

type PauseVaultResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PauseVaultResponse) Reset() {
	*x = PauseVaultResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PauseVaultResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PauseVaultResponse) ProtoMessage() {}

func (x *PauseVaultResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PauseVaultResponse.ProtoReflect.Descriptor instead.
func (*PauseVaultResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{18}
}

type ResumeVaultRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	VaultId       string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeVaultRequest) Reset() {
	*x = ResumeVaultRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeVaultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeVaultRequest) ProtoMessage() {}

func (x *ResumeVaultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeVaultRequest.ProtoReflect.Descriptor instead.
func (*ResumeVaultRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{19}
}

func (x *ResumeVaultRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *ResumeVaultRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

type ResumeVaultResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeVaultResponse) Reset() {
	*x = ResumeVaultResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeVaultResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeVaultResponse) ProtoMessage() {}

func (x *ResumeVaultResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeVaultResponse.ProtoReflect.Descriptor instead.
func (*ResumeVaultResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{20}
}

type EmergencyShutdownRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	VaultId       string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EmergencyShutdownRequest) Reset() {
	*x = EmergencyShutdownRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmergencyShutdownRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmergencyShutdownRequest) ProtoMessage() {}

func (x *EmergencyShutdownRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmergencyShutdownRequest.ProtoReflect.Descriptor instead.
func (*EmergencyShutdownRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{21}
}

func (x *EmergencyShutdownRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *EmergencyShutdownRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

type EmergencyShutdownResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EmergencyShutdownResponse) Reset() {
	*x = EmergencyShutdownResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmergencyShutdownResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmergencyShutdownResponse) ProtoMessage() {}

func (x *EmergencyShutdownResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmergencyShutdownResponse.ProtoReflect.Descriptor instead.
func (*EmergencyShutdownResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{22}
}

type ResumeFromEmergencyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	VaultId       string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeFromEmergencyRequest) Reset() {
	*x = ResumeFromEmergencyRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeFromEmergencyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeFromEmergencyRequest) ProtoMessage() {}

func (x *ResumeFromEmergencyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeFromEmergencyRequest.ProtoReflect.Descriptor instead.
func (*ResumeFromEmergencyRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{23}
}

func (x *ResumeFromEmergencyRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *ResumeFromEmergencyRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

type ResumeFromEmergencyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeFromEmergencyResponse) Reset() {
	*x = ResumeFromEmergencyResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeFromEmergencyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeFromEmergencyResponse) ProtoMessage() {}

func (x *ResumeFromEmergencyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeFromEmergencyResponse.ProtoReflect.Descriptor instead.
func (*ResumeFromEmergencyResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{24}
}

type EmergencyWithdrawRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	VaultId       string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	Shares        string                 `protobuf:"bytes,3,opt,name=shares,proto3" json:"shares,omitempty"`
	Receiver      string                 `protobuf:"bytes,4,opt,name=receiver,proto3" json:"receiver,omitempty"`
	Owner         string                 `protobuf:"bytes,5,opt,name=owner,proto3" json:"owner,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EmergencyWithdrawRequest) Reset() {
	*x = EmergencyWithdrawRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmergencyWithdrawRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmergencyWithdrawRequest) ProtoMessage() {}

func (x *EmergencyWithdrawRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmergencyWithdrawRequest.ProtoReflect.Descriptor instead.
func (*EmergencyWithdrawRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{25}
}

func (x *EmergencyWithdrawRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *EmergencyWithdrawRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *EmergencyWithdrawRequest) GetShares() string {
	if x != nil {
		return x.Shares
	}
	return ""
}

func (x *EmergencyWithdrawRequest) GetReceiver() string {
	if x != nil {
		return x.Receiver
	}
	return ""
}

func (x *EmergencyWithdrawRequest) GetOwner() string {
	if x != nil {
		return x.Owner
	}
	return ""
}

type EmergencyWithdrawResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AssetsPaid    string                 `protobuf:"bytes,1,opt,name=assets_paid,json=assetsPaid,proto3" json:"assets_paid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EmergencyWithdrawResponse) Reset() {
	*x = EmergencyWithdrawResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EmergencyWithdrawResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EmergencyWithdrawResponse) ProtoMessage() {}

func (x *EmergencyWithdrawResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EmergencyWithdrawResponse.ProtoReflect.Descriptor instead.
func (*EmergencyWithdrawResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{26}
}

func (x *EmergencyWithdrawResponse) GetAssetsPaid() string {
	if x != nil {
		return x.AssetsPaid
	}
	return ""
}

type GetVaultRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VaultId       string                 `protobuf:"bytes,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVaultRequest) Reset() {
	*x = GetVaultRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVaultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVaultRequest) ProtoMessage() {}

func (x *GetVaultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVaultRequest.ProtoReflect.Descriptor instead.
func (*GetVaultRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{27}
}

func (x *GetVaultRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

type GetVaultResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vault         *Vault                 `protobuf:"bytes,1,opt,name=vault,proto3" json:"vault,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVaultResponse) Reset() {
	*x = GetVaultResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVaultResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVaultResponse) ProtoMessage() {}

func (x *GetVaultResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVaultResponse.ProtoReflect.Descriptor instead.
func (*GetVaultResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{28}
}

func (x *GetVaultResponse) GetVault() *Vault {
	if x != nil {
		return x.Vault
	}
	return nil
}

type ClaimRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Depositor      string                 `protobuf:"bytes,1,opt,name=depositor,proto3" json:"depositor,omitempty"`
	DistributionId string                 `protobuf:"bytes,2,opt,name=distribution_id,json=distributionId,proto3" json:"distribution_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ClaimRequest) Reset() {
	*x = ClaimRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClaimRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClaimRequest) ProtoMessage() {}

func (x *ClaimRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClaimRequest.ProtoReflect.Descriptor instead.
func (*ClaimRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{29}
}

func (x *ClaimRequest) GetDepositor() string {
	if x != nil {
		return x.Depositor
	}
	return ""
}

func (x *ClaimRequest) GetDistributionId() string {
	if x != nil {
		return x.DistributionId
	}
	return ""
}

type ClaimResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Entitlement       string                 `protobuf:"bytes,1,opt,name=entitlement,proto3" json:"entitlement,omitempty"`
	CampaignAmount    string                 `protobuf:"bytes,2,opt,name=campaign_amount,json=campaignAmount,proto3" json:"campaign_amount,omitempty"`
	BeneficiaryAmount string                 `protobuf:"bytes,3,opt,name=beneficiary_amount,json=beneficiaryAmount,proto3" json:"beneficiary_amount,omitempty"`
	Escrowed          bool                   `protobuf:"varint,4,opt,name=escrowed,proto3" json:"escrowed,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *ClaimResponse) Reset() {
	*x = ClaimResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClaimResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClaimResponse) ProtoMessage() {}

func (x *ClaimResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClaimResponse.ProtoReflect.Descriptor instead.
func (*ClaimResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{30}
}

func (x *ClaimResponse) GetEntitlement() string {
	if x != nil {
		return x.Entitlement
	}
	return ""
}

func (x *ClaimResponse) GetCampaignAmount() string {
	if x != nil {
		return x.CampaignAmount
	}
	return ""
}

func (x *ClaimResponse) GetBeneficiaryAmount() string {
	if x != nil {
		return x.BeneficiaryAmount
	}
	return ""
}

func (x *ClaimResponse) GetEscrowed() bool {
	if x != nil {
		return x.Escrowed
	}
	return false
}

type ClaimAllRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Depositor     string                 `protobuf:"bytes,1,opt,name=depositor,proto3" json:"depositor,omitempty"`
	VaultId       string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClaimAllRequest) Reset() {
	*x = ClaimAllRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClaimAllRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClaimAllRequest) ProtoMessage() {}

func (x *ClaimAllRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClaimAllRequest.ProtoReflect.Descriptor instead.
func (*ClaimAllRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{31}
}

func (x *ClaimAllRequest) GetDepositor() string {
	if x != nil {
		return x.Depositor
	}
	return ""
}

func (x *ClaimAllRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

type ClaimAllResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Claims        []*ClaimResponse       `protobuf:"bytes,1,rep,name=claims,proto3" json:"claims,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClaimAllResponse) Reset() {
	*x = ClaimAllResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClaimAllResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClaimAllResponse) ProtoMessage() {}

func (x *ClaimAllResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClaimAllResponse.ProtoReflect.Descriptor instead.
func (*ClaimAllResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{32}
}

func (x *ClaimAllResponse) GetClaims() []*ClaimResponse {
	if x != nil {
		return x.Claims
	}
	return nil
}

type PendingEntitlementRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Depositor     string                 `protobuf:"bytes,1,opt,name=depositor,proto3" json:"depositor,omitempty"`
	VaultId       string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PendingEntitlementRequest) Reset() {
	*x = PendingEntitlementRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PendingEntitlementRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PendingEntitlementRequest) ProtoMessage() {}

func (x *PendingEntitlementRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PendingEntitlementRequest.ProtoReflect.Descriptor instead.
func (*PendingEntitlementRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{33}
}

func (x *PendingEntitlementRequest) GetDepositor() string {
	if x != nil {
		return x.Depositor
	}
	return ""
}

func (x *PendingEntitlementRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

type PendingEntitlementResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Amount        string                 `protobuf:"bytes,1,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PendingEntitlementResponse) Reset() {
	*x = PendingEntitlementResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PendingEntitlementResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PendingEntitlementResponse) ProtoMessage() {}

func (x *PendingEntitlementResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PendingEntitlementResponse.ProtoReflect.Descriptor instead.
func (*PendingEntitlementResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{34}
}

func (x *PendingEntitlementResponse) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

type SetPreferenceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	VaultId       string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	CampaignId    string                 `protobuf:"bytes,3,opt,name=campaign_id,json=campaignId,proto3" json:"campaign_id,omitempty"`
	Beneficiary   string                 `protobuf:"bytes,4,opt,name=beneficiary,proto3" json:"beneficiary,omitempty"`
	CampaignBps   int64                  `protobuf:"varint,5,opt,name=campaign_bps,json=campaignBps,proto3" json:"campaign_bps,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetPreferenceRequest) Reset() {
	*x = SetPreferenceRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetPreferenceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetPreferenceRequest) ProtoMessage() {}

func (x *SetPreferenceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetPreferenceRequest.ProtoReflect.Descriptor instead.
func (*SetPreferenceRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{35}
}

func (x *SetPreferenceRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *SetPreferenceRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *SetPreferenceRequest) GetCampaignId() string {
	if x != nil {
		return x.CampaignId
	}
	return ""
}

func (x *SetPreferenceRequest) GetBeneficiary() string {
	if x != nil {
		return x.Beneficiary
	}
	return ""
}

func (x *SetPreferenceRequest) GetCampaignBps() int64 {
	if x != nil {
		return x.CampaignBps
	}
	return 0
}

type SetPreferenceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetPreferenceResponse) Reset() {
	*x = SetPreferenceResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetPreferenceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetPreferenceResponse) ProtoMessage() {}

func (x *SetPreferenceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetPreferenceResponse.ProtoReflect.Descriptor instead.
func (*SetPreferenceResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{36}
}

type GetPreferenceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Depositor     string                 `protobuf:"bytes,1,opt,name=depositor,proto3" json:"depositor,omitempty"`
	VaultId       string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPreferenceRequest) Reset() {
	*x = GetPreferenceRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPreferenceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPreferenceRequest) ProtoMessage() {}

func (x *GetPreferenceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPreferenceRequest.ProtoReflect.Descriptor instead.
func (*GetPreferenceRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{37}
}

func (x *GetPreferenceRequest) GetDepositor() string {
	if x != nil {
		return x.Depositor
	}
	return ""
}

func (x *GetPreferenceRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

type GetPreferenceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CampaignId    string                 `protobuf:"bytes,1,opt,name=campaign_id,json=campaignId,proto3" json:"campaign_id,omitempty"`
	Beneficiary   string                 `protobuf:"bytes,2,opt,name=beneficiary,proto3" json:"beneficiary,omitempty"`
	CampaignBps   int64                  `protobuf:"varint,3,opt,name=campaign_bps,json=campaignBps,proto3" json:"campaign_bps,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPreferenceResponse) Reset() {
	*x = GetPreferenceResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPreferenceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPreferenceResponse) ProtoMessage() {}

func (x *GetPreferenceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPreferenceResponse.ProtoReflect.Descriptor instead.
func (*GetPreferenceResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{38}
}

func (x *GetPreferenceResponse) GetCampaignId() string {
	if x != nil {
		return x.CampaignId
	}
	return ""
}

func (x *GetPreferenceResponse) GetBeneficiary() string {
	if x != nil {
		return x.Beneficiary
	}
	return ""
}

func (x *GetPreferenceResponse) GetCampaignBps() int64 {
	if x != nil {
		return x.CampaignBps
	}
	return 0
}

type ReleaseEscrowRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	CampaignId    string                 `protobuf:"bytes,2,opt,name=campaign_id,json=campaignId,proto3" json:"campaign_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReleaseEscrowRequest) Reset() {
	*x = ReleaseEscrowRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReleaseEscrowRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReleaseEscrowRequest) ProtoMessage() {}

func (x *ReleaseEscrowRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReleaseEscrowRequest.ProtoReflect.Descriptor instead.
func (*ReleaseEscrowRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{39}
}

func (x *ReleaseEscrowRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *ReleaseEscrowRequest) GetCampaignId() string {
	if x != nil {
		return x.CampaignId
	}
	return ""
}

type ReleaseEscrowResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	AmountReleased string                 `protobuf:"bytes,1,opt,name=amount_released,json=amountReleased,proto3" json:"amount_released,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ReleaseEscrowResponse) Reset() {
	*x = ReleaseEscrowResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReleaseEscrowResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReleaseEscrowResponse) ProtoMessage() {}

func (x *ReleaseEscrowResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReleaseEscrowResponse.ProtoReflect.Descriptor instead.
func (*ReleaseEscrowResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{40}
}

func (x *ReleaseEscrowResponse) GetAmountReleased() string {
	if x != nil {
		return x.AmountReleased
	}
	return ""
}

type RefundEscrowRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	CampaignId    string                 `protobuf:"bytes,2,opt,name=campaign_id,json=campaignId,proto3" json:"campaign_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RefundEscrowRequest) Reset() {
	*x = RefundEscrowRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefundEscrowRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefundEscrowRequest) ProtoMessage() {}

func (x *RefundEscrowRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefundEscrowRequest.ProtoReflect.Descriptor instead.
func (*RefundEscrowRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{41}
}

func (x *RefundEscrowRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *RefundEscrowRequest) GetCampaignId() string {
	if x != nil {
		return x.CampaignId
	}
	return ""
}

type RefundEscrowResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	AmountRefunded string                 `protobuf:"bytes,1,opt,name=amount_refunded,json=amountRefunded,proto3" json:"amount_refunded,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *RefundEscrowResponse) Reset() {
	*x = RefundEscrowResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RefundEscrowResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RefundEscrowResponse) ProtoMessage() {}

func (x *RefundEscrowResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RefundEscrowResponse.ProtoReflect.Descriptor instead.
func (*RefundEscrowResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{42}
}

func (x *RefundEscrowResponse) GetAmountRefunded() string {
	if x != nil {
		return x.AmountRefunded
	}
	return ""
}

type SubmitCampaignRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Curator       string                 `protobuf:"bytes,1,opt,name=curator,proto3" json:"curator,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	FundingTarget string                 `protobuf:"bytes,3,opt,name=funding_target,json=fundingTarget,proto3" json:"funding_target,omitempty"`
	StakeAmount   string                 `protobuf:"bytes,4,opt,name=stake_amount,json=stakeAmount,proto3" json:"stake_amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitCampaignRequest) Reset() {
	*x = SubmitCampaignRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitCampaignRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitCampaignRequest) ProtoMessage() {}

func (x *SubmitCampaignRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitCampaignRequest.ProtoReflect.Descriptor instead.
func (*SubmitCampaignRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{43}
}

func (x *SubmitCampaignRequest) GetCurator() string {
	if x != nil {
		return x.Curator
	}
	return ""
}

func (x *SubmitCampaignRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SubmitCampaignRequest) GetFundingTarget() string {
	if x != nil {
		return x.FundingTarget
	}
	return ""
}

func (x *SubmitCampaignRequest) GetStakeAmount() string {
	if x != nil {
		return x.StakeAmount
	}
	return ""
}

type SubmitCampaignResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Campaign      *Campaign              `protobuf:"bytes,1,opt,name=campaign,proto3" json:"campaign,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitCampaignResponse) Reset() {
	*x = SubmitCampaignResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitCampaignResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitCampaignResponse) ProtoMessage() {}

func (x *SubmitCampaignResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitCampaignResponse.ProtoReflect.Descriptor instead.
func (*SubmitCampaignResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{44}
}

func (x *SubmitCampaignResponse) GetCampaign() *Campaign {
	if x != nil {
		return x.Campaign
	}
	return nil
}

type CampaignActionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	CampaignId    string                 `protobuf:"bytes,2,opt,name=campaign_id,json=campaignId,proto3" json:"campaign_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CampaignActionRequest) Reset() {
	*x = CampaignActionRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CampaignActionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CampaignActionRequest) ProtoMessage() {}

func (x *CampaignActionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CampaignActionRequest.ProtoReflect.Descriptor instead.
func (*CampaignActionRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{45}
}

func (x *CampaignActionRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *CampaignActionRequest) GetCampaignId() string {
	if x != nil {
		return x.CampaignId
	}
	return ""
}

type CampaignActionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CampaignActionResponse) Reset() {
	*x = CampaignActionResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[46]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CampaignActionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CampaignActionResponse) ProtoMessage() {}

func (x *CampaignActionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[46]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CampaignActionResponse.ProtoReflect.Descriptor instead.
func (*CampaignActionResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{46}
}

type StakeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Supporter     string                 `protobuf:"bytes,1,opt,name=supporter,proto3" json:"supporter,omitempty"`
	CampaignId    string                 `protobuf:"bytes,2,opt,name=campaign_id,json=campaignId,proto3" json:"campaign_id,omitempty"`
	VaultId       string                 `protobuf:"bytes,3,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	Amount        string                 `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StakeRequest) Reset() {
	*x = StakeRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[47]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StakeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StakeRequest) ProtoMessage() {}

func (x *StakeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[47]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StakeRequest.ProtoReflect.Descriptor instead.
func (*StakeRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{47}
}

func (x *StakeRequest) GetSupporter() string {
	if x != nil {
		return x.Supporter
	}
	return ""
}

func (x *StakeRequest) GetCampaignId() string {
	if x != nil {
		return x.CampaignId
	}
	return ""
}

func (x *StakeRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *StakeRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

type StakeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StakeResponse) Reset() {
	*x = StakeResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[48]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StakeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StakeResponse) ProtoMessage() {}

func (x *StakeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[48]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StakeResponse.ProtoReflect.Descriptor instead.
func (*StakeResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{48}
}

type UnstakeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Supporter     string                 `protobuf:"bytes,1,opt,name=supporter,proto3" json:"supporter,omitempty"`
	CampaignId    string                 `protobuf:"bytes,2,opt,name=campaign_id,json=campaignId,proto3" json:"campaign_id,omitempty"`
	VaultId       string                 `protobuf:"bytes,3,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	Amount        string                 `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnstakeRequest) Reset() {
	*x = UnstakeRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[49]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnstakeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnstakeRequest) ProtoMessage() {}

func (x *UnstakeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[49]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnstakeRequest.ProtoReflect.Descriptor instead.
func (*UnstakeRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{49}
}

func (x *UnstakeRequest) GetSupporter() string {
	if x != nil {
		return x.Supporter
	}
	return ""
}

func (x *UnstakeRequest) GetCampaignId() string {
	if x != nil {
		return x.CampaignId
	}
	return ""
}

func (x *UnstakeRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *UnstakeRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

type UnstakeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnstakeResponse) Reset() {
	*x = UnstakeResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[50]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnstakeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnstakeResponse) ProtoMessage() {}

func (x *UnstakeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[50]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnstakeResponse.ProtoReflect.Descriptor instead.
func (*UnstakeResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{50}
}

type GetCampaignRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CampaignId    string                 `protobuf:"bytes,1,opt,name=campaign_id,json=campaignId,proto3" json:"campaign_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCampaignRequest) Reset() {
	*x = GetCampaignRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[51]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCampaignRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCampaignRequest) ProtoMessage() {}

func (x *GetCampaignRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[51]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCampaignRequest.ProtoReflect.Descriptor instead.
func (*GetCampaignRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{51}
}

func (x *GetCampaignRequest) GetCampaignId() string {
	if x != nil {
		return x.CampaignId
	}
	return ""
}

type GetCampaignResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Campaign      *Campaign              `protobuf:"bytes,1,opt,name=campaign,proto3" json:"campaign,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCampaignResponse) Reset() {
	*x = GetCampaignResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[52]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCampaignResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCampaignResponse) ProtoMessage() {}

func (x *GetCampaignResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[52]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCampaignResponse.ProtoReflect.Descriptor instead.
func (*GetCampaignResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{52}
}

func (x *GetCampaignResponse) GetCampaign() *Campaign {
	if x != nil {
		return x.Campaign
	}
	return nil
}

type ListCampaignsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// UNSPECIFIED lists every campaign.
	Status        CampaignStatus `protobuf:"varint,1,opt,name=status,proto3,enum=donorvault.v1.CampaignStatus" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCampaignsRequest) Reset() {
	*x = ListCampaignsRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[53]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCampaignsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCampaignsRequest) ProtoMessage() {}

func (x *ListCampaignsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[53]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCampaignsRequest.ProtoReflect.Descriptor instead.
func (*ListCampaignsRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{53}
}

func (x *ListCampaignsRequest) GetStatus() CampaignStatus {
	if x != nil {
		return x.Status
	}
	return CampaignStatus_CAMPAIGN_STATUS_UNSPECIFIED
}

type ListCampaignsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Campaigns     []*Campaign            `protobuf:"bytes,1,rep,name=campaigns,proto3" json:"campaigns,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCampaignsResponse) Reset() {
	*x = ListCampaignsResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[54]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCampaignsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCampaignsResponse) ProtoMessage() {}

func (x *ListCampaignsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[54]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCampaignsResponse.ProtoReflect.Descriptor instead.
func (*ListCampaignsResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{54}
}

func (x *ListCampaignsResponse) GetCampaigns() []*Campaign {
	if x != nil {
		return x.Campaigns
	}
	return nil
}

type ScheduleCheckpointRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	CampaignId    string                 `protobuf:"bytes,2,opt,name=campaign_id,json=campaignId,proto3" json:"campaign_id,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	VoteDeadline  *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=vote_deadline,json=voteDeadline,proto3" json:"vote_deadline,omitempty"`
	QuorumBps     int64                  `protobuf:"varint,5,opt,name=quorum_bps,json=quorumBps,proto3" json:"quorum_bps,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScheduleCheckpointRequest) Reset() {
	*x = ScheduleCheckpointRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[55]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScheduleCheckpointRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScheduleCheckpointRequest) ProtoMessage() {}

func (x *ScheduleCheckpointRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[55]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScheduleCheckpointRequest.ProtoReflect.Descriptor instead.
func (*ScheduleCheckpointRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{55}
}

func (x *ScheduleCheckpointRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *ScheduleCheckpointRequest) GetCampaignId() string {
	if x != nil {
		return x.CampaignId
	}
	return ""
}

func (x *ScheduleCheckpointRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *ScheduleCheckpointRequest) GetVoteDeadline() *timestamppb.Timestamp {
	if x != nil {
		return x.VoteDeadline
	}
	return nil
}

func (x *ScheduleCheckpointRequest) GetQuorumBps() int64 {
	if x != nil {
		return x.QuorumBps
	}
	return 0
}

type ScheduleCheckpointResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Checkpoint    *Checkpoint            `protobuf:"bytes,1,opt,name=checkpoint,proto3" json:"checkpoint,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScheduleCheckpointResponse) Reset() {
	*x = ScheduleCheckpointResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[56]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScheduleCheckpointResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScheduleCheckpointResponse) ProtoMessage() {}

func (x *ScheduleCheckpointResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[56]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScheduleCheckpointResponse.ProtoReflect.Descriptor instead.
func (*ScheduleCheckpointResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{56}
}

func (x *ScheduleCheckpointResponse) GetCheckpoint() *Checkpoint {
	if x != nil {
		return x.Checkpoint
	}
	return nil
}

type CastVoteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Supporter     string                 `protobuf:"bytes,1,opt,name=supporter,proto3" json:"supporter,omitempty"`
	CheckpointId  string                 `protobuf:"bytes,2,opt,name=checkpoint_id,json=checkpointId,proto3" json:"checkpoint_id,omitempty"`
	Support       bool                   `protobuf:"varint,3,opt,name=support,proto3" json:"support,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CastVoteRequest) Reset() {
	*x = CastVoteRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[57]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CastVoteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CastVoteRequest) ProtoMessage() {}

func (x *CastVoteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[57]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CastVoteRequest.ProtoReflect.Descriptor instead.
func (*CastVoteRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{57}
}

func (x *CastVoteRequest) GetSupporter() string {
	if x != nil {
		return x.Supporter
	}
	return ""
}

func (x *CastVoteRequest) GetCheckpointId() string {
	if x != nil {
		return x.CheckpointId
	}
	return ""
}

func (x *CastVoteRequest) GetSupport() bool {
	if x != nil {
		return x.Support
	}
	return false
}

type CastVoteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CastVoteResponse) Reset() {
	*x = CastVoteResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[58]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CastVoteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CastVoteResponse) ProtoMessage() {}

func (x *CastVoteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[58]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CastVoteResponse.ProtoReflect.Descriptor instead.
func (*CastVoteResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{58}
}

type FinalizeCheckpointRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Caller        string                 `protobuf:"bytes,1,opt,name=caller,proto3" json:"caller,omitempty"`
	CheckpointId  string                 `protobuf:"bytes,2,opt,name=checkpoint_id,json=checkpointId,proto3" json:"checkpoint_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinalizeCheckpointRequest) Reset() {
	*x = FinalizeCheckpointRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[59]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinalizeCheckpointRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinalizeCheckpointRequest) ProtoMessage() {}

func (x *FinalizeCheckpointRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[59]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinalizeCheckpointRequest.ProtoReflect.Descriptor instead.
func (*FinalizeCheckpointRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{59}
}

func (x *FinalizeCheckpointRequest) GetCaller() string {
	if x != nil {
		return x.Caller
	}
	return ""
}

func (x *FinalizeCheckpointRequest) GetCheckpointId() string {
	if x != nil {
		return x.CheckpointId
	}
	return ""
}

type FinalizeCheckpointResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Checkpoint    *Checkpoint            `protobuf:"bytes,1,opt,name=checkpoint,proto3" json:"checkpoint,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinalizeCheckpointResponse) Reset() {
	*x = FinalizeCheckpointResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[60]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinalizeCheckpointResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinalizeCheckpointResponse) ProtoMessage() {}

func (x *FinalizeCheckpointResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[60]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinalizeCheckpointResponse.ProtoReflect.Descriptor instead.
func (*FinalizeCheckpointResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{60}
}

func (x *FinalizeCheckpointResponse) GetCheckpoint() *Checkpoint {
	if x != nil {
		return x.Checkpoint
	}
	return nil
}

type GetCheckpointRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CheckpointId  string                 `protobuf:"bytes,1,opt,name=checkpoint_id,json=checkpointId,proto3" json:"checkpoint_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCheckpointRequest) Reset() {
	*x = GetCheckpointRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[61]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCheckpointRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCheckpointRequest) ProtoMessage() {}

func (x *GetCheckpointRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[61]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCheckpointRequest.ProtoReflect.Descriptor instead.
func (*GetCheckpointRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{61}
}

func (x *GetCheckpointRequest) GetCheckpointId() string {
	if x != nil {
		return x.CheckpointId
	}
	return ""
}

type GetCheckpointResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Checkpoint    *Checkpoint            `protobuf:"bytes,1,opt,name=checkpoint,proto3" json:"checkpoint,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCheckpointResponse) Reset() {
	*x = GetCheckpointResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[62]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCheckpointResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCheckpointResponse) ProtoMessage() {}

func (x *GetCheckpointResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[62]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCheckpointResponse.ProtoReflect.Descriptor instead.
func (*GetCheckpointResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{62}
}

func (x *GetCheckpointResponse) GetCheckpoint() *Checkpoint {
	if x != nil {
		return x.Checkpoint
	}
	return nil
}

type ListCheckpointsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CampaignId    string                 `protobuf:"bytes,1,opt,name=campaign_id,json=campaignId,proto3" json:"campaign_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCheckpointsRequest) Reset() {
	*x = ListCheckpointsRequest{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[63]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCheckpointsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCheckpointsRequest) ProtoMessage() {}

func (x *ListCheckpointsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[63]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCheckpointsRequest.ProtoReflect.Descriptor instead.
func (*ListCheckpointsRequest) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{63}
}

func (x *ListCheckpointsRequest) GetCampaignId() string {
	if x != nil {
		return x.CampaignId
	}
	return ""
}

type ListCheckpointsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Checkpoints   []*Checkpoint          `protobuf:"bytes,1,rep,name=checkpoints,proto3" json:"checkpoints,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCheckpointsResponse) Reset() {
	*x = ListCheckpointsResponse{}
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[64]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCheckpointsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCheckpointsResponse) ProtoMessage() {}

func (x *ListCheckpointsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_donorvault_v1_donorvault_proto_msgTypes[64]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCheckpointsResponse.ProtoReflect.Descriptor instead.
func (*ListCheckpointsResponse) Descriptor() ([]byte, []int) {
	return file_donorvault_v1_donorvault_proto_rawDescGZIP(), []int{64}
}

func (x *ListCheckpointsResponse) GetCheckpoints() []*Checkpoint {
	if x != nil {
		return x.Checkpoints
	}
	return nil
}

var File_donorvault_v1_donorvault_proto protoreflect.FileDescriptor

const file_donorvault_v1_donorvault_proto_rawDesc = "" +
	"\n" +
	"\x1edonorvault/v1/donorvault.proto\x12\rdonorvault.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xdd\x04\n" +
	"\x05Vault\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05asset\x18\x03 \x01(\tR\x05asset\x12!\n" +
	"\fcash_balance\x18\x04 \x01(\tR\vcashBalance\x12-\n" +
	"\x12shares_outstanding\x18\x05 \x01(\tR\x11sharesOutstanding\x12!\n" +
	"\ftotal_assets\x18\x06 \x01(\tR\vtotalAssets\x12&\n" +
	"\x0fcash_buffer_bps\x18\a \x01(\x03R\rcashBufferBps\x12!\n" +
	"\fslippage_bps\x18\b \x01(\x03R\vslippageBps\x12 \n" +
	"\fmax_loss_bps\x18\t \x01(\x03R\n" +
	"maxLossBps\x12(\n" +
	"\x10protocol_fee_bps\x18\n" +
	" \x01(\x03R\x0eprotocolFeeBps\x12*\n" +
	"\x11active_adapter_id\x18\v \x01(\tR\x0factiveAdapterId\x12!\n" +
	"\ftotal_profit\x18\f \x01(\tR\vtotalProfit\x12\x1d\n" +
	"\n" +
	"total_loss\x18\r \x01(\tR\ttotalLoss\x12F\n" +
	"\x11last_harvest_time\x18\x0e \x01(\v2\x1a.google.protobuf.TimestampR\x0flastHarvestTime\x12,\n" +
	"\x04mode\x18\x0f \x01(\x0e2\x18.donorvault.v1.VaultModeR\x04mode\x12*\n" +
	"\x11last_divest_error\x18\x10 \x01(\tR\x0flastDivestError\"\xd2\x02\n" +
	"\bCampaign\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\acurator\x18\x03 \x01(\tR\acurator\x125\n" +
	"\x06status\x18\x04 \x01(\x0e2\x1d.donorvault.v1.CampaignStatusR\x06status\x12%\n" +
	"\x0etotal_received\x18\x05 \x01(\tR\rtotalReceived\x12!\n" +
	"\fstake_amount\x18\x06 \x01(\tR\vstakeAmount\x12%\n" +
	"\x0efunding_target\x18\a \x01(\tR\rfundingTarget\x12%\n" +
	"\x0epayouts_halted\x18\b \x01(\bR\rpayoutsHalted\x129\n" +
	"\n" +
	"created_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"\x83\x03\n" +
	"\n" +
	"Checkpoint\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vcampaign_id\x18\x02 \x01(\tR\n" +
	"campaignId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12?\n" +
	"\rvote_deadline\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\fvoteDeadline\x12\x1d\n" +
	"\n" +
	"quorum_bps\x18\x05 \x01(\x03R\tquorumBps\x12!\n" +
	"\fsnapshot_seq\x18\x06 \x01(\x03R\vsnapshotSeq\x12\x1b\n" +
	"\tvotes_for\x18\a \x01(\tR\bvotesFor\x12#\n" +
	"\rvotes_against\x18\b \x01(\tR\fvotesAgainst\x120\n" +
	"\x14total_eligible_power\x18\t \x01(\tR\x12totalEligiblePower\x127\n" +
	"\x06status\x18\n" +
	" \x01(\x0e2\x1f.donorvault.v1.CheckpointStatusR\x06status\"\x98\x01\n" +
	"\x0eDepositRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\x12\x16\n" +
	"\x06assets\x18\x03 \x01(\tR\x06assets\x12\x1a\n" +
	"\breceiver\x18\x04 \x01(\tR\breceiver\x12\x1f\n" +
	"\vcampaign_id\x18\x05 \x01(\tR\n" +
	"campaignId\"6\n" +
	"\x0fDepositResponse\x12#\n" +
	"\rshares_minted\x18\x01 \x01(\tR\fsharesMinted\"\x95\x01\n" +
	"\vMintRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\x12\x16\n" +
	"\x06shares\x18\x03 \x01(\tR\x06shares\x12\x1a\n" +
	"\breceiver\x18\x04 \x01(\tR\breceiver\x12\x1f\n" +
	"\vcampaign_id\x18\x05 \x01(\tR\n" +
	"campaignId\"9\n" +
	"\fMintResponse\x12)\n" +
	"\x10assets_deposited\x18\x01 \x01(\tR\x0fassetsDeposited\"\x8e\x01\n" +
	"\x0fWithdrawRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\x12\x16\n" +
	"\x06assets\x18\x03 \x01(\tR\x06assets\x12\x1a\n" +
	"\breceiver\x18\x04 \x01(\tR\breceiver\x12\x14\n" +
	"\x05owner\x18\x05 \x01(\tR\x05owner\"7\n" +
	"\x10WithdrawResponse\x12#\n" +
	"\rshares_burned\x18\x01 \x01(\tR\fsharesBurned\"\x8c\x01\n" +
	"\rRedeemRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\x12\x16\n" +
	"\x06shares\x18\x03 \x01(\tR\x06shares\x12\x1a\n" +
	"\breceiver\x18\x04 \x01(\tR\breceiver\x12\x14\n" +
	"\x05owner\x18\x05 \x01(\tR\x05owner\"1\n" +
	"\x0eRedeemResponse\x12\x1f\n" +
	"\vassets_paid\x18\x01 \x01(\tR\n" +
	"assetsPaid\"u\n" +
	"\x0eApproveRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\x12\x18\n" +
	"\aspender\x18\x03 \x01(\tR\aspender\x12\x16\n" +
	"\x06shares\x18\x04 \x01(\tR\x06shares\"\x11\n" +
	"\x0fApproveResponse\"C\n" +
	"\x0eHarvestRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\"=\n" +
	"\x0fHarvestResponse\x12\x16\n" +
	"\x06profit\x18\x01 \x01(\tR\x06profit\x12\x12\n" +
	"\x04loss\x18\x02 \x01(\tR\x04loss\"e\n" +
	"\x11SetAdapterRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\x12\x1d\n" +
	"\n" +
	"adapter_id\x18\x03 \x01(\tR\tadapterId\"\x14\n" +
	"\x12SetAdapterResponse\"F\n" +
	"\x11PauseVaultRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\"\x14\n" +
	"\x12PauseVaultResponse\"G\n" +
	"\x12ResumeVaultRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\"\x15\n" +
	"\x13ResumeVaultResponse\"M\n" +
	"\x18EmergencyShutdownRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\"\x1b\n" +
	"\x19EmergencyShutdownResponse\"O\n" +
	"\x1aResumeFromEmergencyRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\"\x1d\n" +
	"\x1bResumeFromEmergencyResponse\"\x97\x01\n" +
	"\x18EmergencyWithdrawRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\x12\x16\n" +
	"\x06shares\x18\x03 \x01(\tR\x06shares\x12\x1a\n" +
	"\breceiver\x18\x04 \x01(\tR\breceiver\x12\x14\n" +
	"\x05owner\x18\x05 \x01(\tR\x05owner\"<\n" +
	"\x19EmergencyWithdrawResponse\x12\x1f\n" +
	"\vassets_paid\x18\x01 \x01(\tR\n" +
	"assetsPaid\",\n" +
	"\x0fGetVaultRequest\x12\x19\n" +
	"\bvault_id\x18\x01 \x01(\tR\avaultId\">\n" +
	"\x10GetVaultResponse\x12*\n" +
	"\x05vault\x18\x01 \x01(\v2\x14.donorvault.v1.VaultR\x05vault\"U\n" +
	"\fClaimRequest\x12\x1c\n" +
	"\tdepositor\x18\x01 \x01(\tR\tdepositor\x12'\n" +
	"\x0fdistribution_id\x18\x02 \x01(\tR\x0edistributionId\"\xa5\x01\n" +
	"\rClaimResponse\x12 \n" +
	"\ventitlement\x18\x01 \x01(\tR\ventitlement\x12'\n" +
	"\x0fcampaign_amount\x18\x02 \x01(\tR\x0ecampaignAmount\x12-\n" +
	"\x12beneficiary_amount\x18\x03 \x01(\tR\x11beneficiaryAmount\x12\x1a\n" +
	"\bescrowed\x18\x04 \x01(\bR\bescrowed\"J\n" +
	"\x0fClaimAllRequest\x12\x1c\n" +
	"\tdepositor\x18\x01 \x01(\tR\tdepositor\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\"H\n" +
	"\x10ClaimAllResponse\x124\n" +
	"\x06claims\x18\x01 \x03(\v2\x1c.donorvault.v1.ClaimResponseR\x06claims\"T\n" +
	"\x19PendingEntitlementRequest\x12\x1c\n" +
	"\tdepositor\x18\x01 \x01(\tR\tdepositor\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\"4\n" +
	"\x1aPendingEntitlementResponse\x12\x16\n" +
	"\x06amount\x18\x01 \x01(\tR\x06amount\"\xaf\x01\n" +
	"\x14SetPreferenceRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\x12\x1f\n" +
	"\vcampaign_id\x18\x03 \x01(\tR\n" +
	"campaignId\x12 \n" +
	"\vbeneficiary\x18\x04 \x01(\tR\vbeneficiary\x12!\n" +
	"\fcampaign_bps\x18\x05 \x01(\x03R\vcampaignBps\"\x17\n" +
	"\x15SetPreferenceResponse\"O\n" +
	"\x14GetPreferenceRequest\x12\x1c\n" +
	"\tdepositor\x18\x01 \x01(\tR\tdepositor\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\"}\n" +
	"\x15GetPreferenceResponse\x12\x1f\n" +
	"\vcampaign_id\x18\x01 \x01(\tR\n" +
	"campaignId\x12 \n" +
	"\vbeneficiary\x18\x02 \x01(\tR\vbeneficiary\x12!\n" +
	"\fcampaign_bps\x18\x03 \x01(\x03R\vcampaignBps\"O\n" +
	"\x14ReleaseEscrowRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x1f\n" +
	"\vcampaign_id\x18\x02 \x01(\tR\n" +
	"campaignId\"@\n" +
	"\x15ReleaseEscrowResponse\x12'\n" +
	"\x0famount_released\x18\x01 \x01(\tR\x0eamountReleased\"N\n" +
	"\x13RefundEscrowRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x1f\n" +
	"\vcampaign_id\x18\x02 \x01(\tR\n" +
	"campaignId\"?\n" +
	"\x14RefundEscrowResponse\x12'\n" +
	"\x0famount_refunded\x18\x01 \x01(\tR\x0eamountRefunded\"\x8f\x01\n" +
	"\x15SubmitCampaignRequest\x12\x18\n" +
	"\acurator\x18\x01 \x01(\tR\acurator\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12%\n" +
	"\x0efunding_target\x18\x03 \x01(\tR\rfundingTarget\x12!\n" +
	"\fstake_amount\x18\x04 \x01(\tR\vstakeAmount\"M\n" +
	"\x16SubmitCampaignResponse\x123\n" +
	"\bcampaign\x18\x01 \x01(\v2\x17.donorvault.v1.CampaignR\bcampaign\"P\n" +
	"\x15CampaignActionRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x1f\n" +
	"\vcampaign_id\x18\x02 \x01(\tR\n" +
	"campaignId\"\x18\n" +
	"\x16CampaignActionResponse\"\x80\x01\n" +
	"\fStakeRequest\x12\x1c\n" +
	"\tsupporter\x18\x01 \x01(\tR\tsupporter\x12\x1f\n" +
	"\vcampaign_id\x18\x02 \x01(\tR\n" +
	"campaignId\x12\x19\n" +
	"\bvault_id\x18\x03 \x01(\tR\avaultId\x12\x16\n" +
	"\x06amount\x18\x04 \x01(\tR\x06amount\"\x0f\n" +
	"\rStakeResponse\"\x82\x01\n" +
	"\x0eUnstakeRequest\x12\x1c\n" +
	"\tsupporter\x18\x01 \x01(\tR\tsupporter\x12\x1f\n" +
	"\vcampaign_id\x18\x02 \x01(\tR\n" +
	"campaignId\x12\x19\n" +
	"\bvault_id\x18\x03 \x01(\tR\avaultId\x12\x16\n" +
	"\x06amount\x18\x04 \x01(\tR\x06amount\"\x11\n" +
	"\x0fUnstakeResponse\"5\n" +
	"\x12GetCampaignRequest\x12\x1f\n" +
	"\vcampaign_id\x18\x01 \x01(\tR\n" +
	"campaignId\"J\n" +
	"\x13GetCampaignResponse\x123\n" +
	"\bcampaign\x18\x01 \x01(\v2\x17.donorvault.v1.CampaignR\bcampaign\"M\n" +
	"\x14ListCampaignsRequest\x125\n" +
	"\x06status\x18\x01 \x01(\x0e2\x1d.donorvault.v1.CampaignStatusR\x06status\"N\n" +
	"\x15ListCampaignsResponse\x125\n" +
	"\tcampaigns\x18\x01 \x03(\v2\x17.donorvault.v1.CampaignR\tcampaigns\"\xca\x01\n" +
	"\x19ScheduleCheckpointRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12\x1f\n" +
	"\vcampaign_id\x18\x02 \x01(\tR\n" +
	"campaignId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12?\n" +
	"\rvote_deadline\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\fvoteDeadline\x12\x1d\n" +
	"\n" +
	"quorum_bps\x18\x05 \x01(\x03R\tquorumBps\"W\n" +
	"\x1aScheduleCheckpointResponse\x129\n" +
	"\n" +
	"checkpoint\x18\x01 \x01(\v2\x19.donorvault.v1.CheckpointR\n" +
	"checkpoint\"n\n" +
	"\x0fCastVoteRequest\x12\x1c\n" +
	"\tsupporter\x18\x01 \x01(\tR\tsupporter\x12#\n" +
	"\rcheckpoint_id\x18\x02 \x01(\tR\fcheckpointId\x12\x18\n" +
	"\asupport\x18\x03 \x01(\bR\asupport\"\x12\n" +
	"\x10CastVoteResponse\"X\n" +
	"\x19FinalizeCheckpointRequest\x12\x16\n" +
	"\x06caller\x18\x01 \x01(\tR\x06caller\x12#\n" +
	"\rcheckpoint_id\x18\x02 \x01(\tR\fcheckpointId\"W\n" +
	"\x1aFinalizeCheckpointResponse\x129\n" +
	"\n" +
	"checkpoint\x18\x01 \x01(\v2\x19.donorvault.v1.CheckpointR\n" +
	"checkpoint\";\n" +
	"\x14GetCheckpointRequest\x12#\n" +
	"\rcheckpoint_id\x18\x01 \x01(\tR\fcheckpointId\"R\n" +
	"\x15GetCheckpointResponse\x129\n" +
	"\n" +
	"checkpoint\x18\x01 \x01(\v2\x19.donorvault.v1.CheckpointR\n" +
	"checkpoint\"9\n" +
	"\x16ListCheckpointsRequest\x12\x1f\n" +
	"\vcampaign_id\x18\x01 \x01(\tR\n" +
	"campaignId\"V\n" +
	"\x17ListCheckpointsResponse\x12;\n" +
	"\vcheckpoints\x18\x01 \x03(\v2\x19.donorvault.v1.CheckpointR\vcheckpoints*x\n" +
	"\tVaultMode\x12\x1a\n" +
	"\x16VAULT_MODE_UNSPECIFIED\x10\x00\x12\x15\n" +
	"\x11VAULT_MODE_NORMAL\x10\x01\x12\x15\n" +
	"\x11VAULT_MODE_PAUSED\x10\x02\x12!\n" +
	"\x1dVAULT_MODE_EMERGENCY_SHUTDOWN\x10\x03*\xe4\x01\n" +
	"\x0eCampaignStatus\x12\x1f\n" +
	"\x1bCAMPAIGN_STATUS_UNSPECIFIED\x10\x00\x12\x1d\n" +
	"\x19CAMPAIGN_STATUS_SUBMITTED\x10\x01\x12\x1c\n" +
	"\x18CAMPAIGN_STATUS_APPROVED\x10\x02\x12\x1a\n" +
	"\x16CAMPAIGN_STATUS_ACTIVE\x10\x03\x12\x1a\n" +
	"\x16CAMPAIGN_STATUS_PAUSED\x10\x04\x12\x1d\n" +
	"\x19CAMPAIGN_STATUS_COMPLETED\x10\x05\x12\x1d\n" +
	"\x19CAMPAIGN_STATUS_CANCELLED\x10\x06*\x90\x01\n" +
	"\x10CheckpointStatus\x12!\n" +
	"\x1dCHECKPOINT_STATUS_UNSPECIFIED\x10\x00\x12\x1d\n" +
	"\x19CHECKPOINT_STATUS_PENDING\x10\x01\x12\x1c\n" +
	"\x18CHECKPOINT_STATUS_PASSED\x10\x02\x12\x1c\n" +
	"\x18CHECKPOINT_STATUS_FAILED\x10\x032\xce\x19\n" +
	"\x11DonorVaultService\x12H\n" +
	"\aDeposit\x12\x1d.donorvault.v1.DepositRequest\x1a\x1e.donorvault.v1.DepositResponse\x12?\n" +
	"\x04Mint\x12\x1a.donorvault.v1.MintRequest\x1a\x1b.donorvault.v1.MintResponse\x12K\n" +
	"\bWithdraw\x12\x1e.donorvault.v1.WithdrawRequest\x1a\x1f.donorvault.v1.WithdrawResponse\x12E\n" +
	"\x06Redeem\x12\x1c.donorvault.v1.RedeemRequest\x1a\x1d.donorvault.v1.RedeemResponse\x12H\n" +
	"\aApprove\x12\x1d.donorvault.v1.ApproveRequest\x1a\x1e.donorvault.v1.ApproveResponse\x12H\n" +
	"\aHarvest\x12\x1d.donorvault.v1.HarvestRequest\x1a\x1e.donorvault.v1.HarvestResponse\x12Q\n" +
	"\n" +
	"SetAdapter\x12 .donorvault.v1.SetAdapterRequest\x1a!.donorvault.v1.SetAdapterResponse\x12Q\n" +
	"\n" +
	"PauseVault\x12 .donorvault.v1.PauseVaultRequest\x1a!.donorvault.v1.PauseVaultResponse\x12T\n" +
	"\vResumeVault\x12!.donorvault.v1.ResumeVaultRequest\x1a\".donorvault.v1.ResumeVaultResponse\x12f\n" +
	"\x11EmergencyShutdown\x12'.donorvault.v1.EmergencyShutdownRequest\x1a(.donorvault.v1.EmergencyShutdownResponse\x12l\n" +
	"\x13ResumeFromEmergency\x12).donorvault.v1.ResumeFromEmergencyRequest\x1a*.donorvault.v1.ResumeFromEmergencyResponse\x12f\n" +
	"\x11EmergencyWithdraw\x12'.donorvault.v1.EmergencyWithdrawRequest\x1a(.donorvault.v1.EmergencyWithdrawResponse\x12K\n" +
	"\bGetVault\x12\x1e.donorvault.v1.GetVaultRequest\x1a\x1f.donorvault.v1.GetVaultResponse\x12B\n" +
	"\x05Claim\x12\x1b.donorvault.v1.ClaimRequest\x1a\x1c.donorvault.v1.ClaimResponse\x12K\n" +
	"\bClaimAll\x12\x1e.donorvault.v1.ClaimAllRequest\x1a\x1f.donorvault.v1.ClaimAllResponse\x12i\n" +
	"\x12PendingEntitlement\x12(.donorvault.v1.PendingEntitlementRequest\x1a).donorvault.v1.PendingEntitlementResponse\x12Z\n" +
	"\rSetPreference\x12#.donorvault.v1.SetPreferenceRequest\x1a$.donorvault.v1.SetPreferenceResponse\x12Z\n" +
	"\rGetPreference\x12#.donorvault.v1.GetPreferenceRequest\x1a$.donorvault.v1.GetPreferenceResponse\x12Z\n" +
	"\rReleaseEscrow\x12#.donorvault.v1.ReleaseEscrowRequest\x1a$.donorvault.v1.ReleaseEscrowResponse\x12W\n" +
	"\fRefundEscrow\x12\".donorvault.v1.RefundEscrowRequest\x1a#.donorvault.v1.RefundEscrowResponse\x12]\n" +
	"\x0eSubmitCampaign\x12$.donorvault.v1.SubmitCampaignRequest\x1a%.donorvault.v1.SubmitCampaignResponse\x12^\n" +
	"\x0fApproveCampaign\x12$.donorvault.v1.CampaignActionRequest\x1a%.donorvault.v1.CampaignActionResponse\x12_\n" +
	"\x10ActivateCampaign\x12$.donorvault.v1.CampaignActionRequest\x1a%.donorvault.v1.CampaignActionResponse\x12\\\n" +
	"\rPauseCampaign\x12$.donorvault.v1.CampaignActionRequest\x1a%.donorvault.v1.CampaignActionResponse\x12]\n" +
	"\x0eResumeCampaign\x12$.donorvault.v1.CampaignActionRequest\x1a%.donorvault.v1.CampaignActionResponse\x12_\n" +
	"\x10CompleteCampaign\x12$.donorvault.v1.CampaignActionRequest\x1a%.donorvault.v1.CampaignActionResponse\x12]\n" +
	"\x0eCancelCampaign\x12$.donorvault.v1.CampaignActionRequest\x1a%.donorvault.v1.CampaignActionResponse\x12B\n" +
	"\x05Stake\x12\x1b.donorvault.v1.StakeRequest\x1a\x1c.donorvault.v1.StakeResponse\x12H\n" +
	"\aUnstake\x12\x1d.donorvault.v1.UnstakeRequest\x1a\x1e.donorvault.v1.UnstakeResponse\x12T\n" +
	"\vGetCampaign\x12!.donorvault.v1.GetCampaignRequest\x1a\".donorvault.v1.GetCampaignResponse\x12Z\n" +
	"\rListCampaigns\x12#.donorvault.v1.ListCampaignsRequest\x1a$.donorvault.v1.ListCampaignsResponse\x12i\n" +
	"\x12ScheduleCheckpoint\x12(.donorvault.v1.ScheduleCheckpointRequest\x1a).donorvault.v1.ScheduleCheckpointResponse\x12K\n" +
	"\bCastVote\x12\x1e.donorvault.v1.CastVoteRequest\x1a\x1f.donorvault.v1.CastVoteResponse\x12i\n" +
	"\x12FinalizeCheckpoint\x12(.donorvault.v1.FinalizeCheckpointRequest\x1a).donorvault.v1.FinalizeCheckpointResponse\x12X\n" +
	"\tClearHalt\x12$.donorvault.v1.CampaignActionRequest\x1a%.donorvault.v1.CampaignActionResponse\x12Z\n" +
	"\rGetCheckpoint\x12#.donorvault.v1.GetCheckpointRequest\x1a$.donorvault.v1.GetCheckpointResponse\x12`\n" +
	"\x0fListCheckpoints\x12%.donorvault.v1.ListCheckpointsRequest\x1a&.donorvault.v1.ListCheckpointsResponseB[ZYgithub.com/donorvault/donorvault-backend/internal/adapter/grpc/donorvault/v1;donorvaultv1b\x06proto3"

var (
	file_donorvault_v1_donorvault_proto_rawDescOnce sync.Once
	file_donorvault_v1_donorvault_proto_rawDescData []byte
)

func file_donorvault_v1_donorvault_proto_rawDescGZIP() []byte {
	file_donorvault_v1_donorvault_proto_rawDescOnce.Do(func() {
		file_donorvault_v1_donorvault_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_donorvault_v1_donorvault_proto_rawDesc), len(file_donorvault_v1_donorvault_proto_rawDesc)))
	})
	return file_donorvault_v1_donorvault_proto_rawDescData
}

var file_donorvault_v1_donorvault_proto_enumTypes = make([]protoimpl.EnumInfo, 3)
var file_donorvault_v1_donorvault_proto_msgTypes = make([]protoimpl.MessageInfo, 65)
var file_donorvault_v1_donorvault_proto_goTypes = []any{
	(VaultMode)(0),                      // 0: donorvault.v1.VaultMode
	(CampaignStatus)(0),                 // 1: donorvault.v1.CampaignStatus
	(CheckpointStatus)(0),               // 2: donorvault.v1.CheckpointStatus
	(*Vault)(nil),                       // 3: donorvault.v1.Vault
	(*Campaign)(nil),                    // 4: donorvault.v1.Campaign
	(*Checkpoint)(nil),                  // 5: donorvault.v1.Checkpoint
	(*DepositRequest)(nil),              // 6: donorvault.v1.DepositRequest
	(*DepositResponse)(nil),             // 7: donorvault.v1.DepositResponse
	(*MintRequest)(nil),                 // 8: donorvault.v1.MintRequest
	(*MintResponse)(nil),                // 9: donorvault.v1.MintResponse
	(*WithdrawRequest)(nil),             // 10: donorvault.v1.WithdrawRequest
	(*WithdrawResponse)(nil),            // 11: donorvault.v1.WithdrawResponse
	(*RedeemRequest)(nil),               // 12: donorvault.v1.RedeemRequest
	(*RedeemResponse)(nil),              // 13: donorvault.v1.RedeemResponse
	(*ApproveRequest)(nil),              // 14: donorvault.v1.ApproveRequest
	(*ApproveResponse)(nil),             // 15: donorvault.v1.ApproveResponse
	(*HarvestRequest)(nil),              // 16: donorvault.v1.HarvestRequest
	(*HarvestResponse)(nil),             // 17: donorvault.v1.HarvestResponse
	(*SetAdapterRequest)(nil),           // 18: donorvault.v1.SetAdapterRequest
	(*SetAdapterResponse)(nil),          // 19: donorvault.v1.SetAdapterResponse
	(*PauseVaultRequest)(nil),           // 20: donorvault.v1.PauseVaultRequest
	(*PauseVaultResponse)(nil),          // 21: donorvault.v1.PauseVaultResponse
	(*ResumeVaultRequest)(nil),          // 22: donorvault.v1.ResumeVaultRequest
	(*ResumeVaultResponse)(nil),         // 23: donorvault.v1.ResumeVaultResponse
	(*EmergencyShutdownRequest)(nil),    // 24: donorvault.v1.EmergencyShutdownRequest
	(*EmergencyShutdownResponse)(nil),   // 25: donorvault.v1.EmergencyShutdownResponse
	(*ResumeFromEmergencyRequest)(nil),  // 26: donorvault.v1.ResumeFromEmergencyRequest
	(*ResumeFromEmergencyResponse)(nil), // 27: donorvault.v1.ResumeFromEmergencyResponse
	(*EmergencyWithdrawRequest)(nil),    // 28: donorvault.v1.EmergencyWithdrawRequest
	(*EmergencyWithdrawResponse)(nil),   // 29: donorvault.v1.EmergencyWithdrawResponse
	(*GetVaultRequest)(nil),             // 30: donorvault.v1.GetVaultRequest
	(*GetVaultResponse)(nil),            // 31: donorvault.v1.GetVaultResponse
	(*ClaimRequest)(nil),                // 32: donorvault.v1.ClaimRequest
	(*ClaimResponse)(nil),               // 33: donorvault.v1.ClaimResponse
	(*ClaimAllRequest)(nil),             // 34: donorvault.v1.ClaimAllRequest
	(*ClaimAllResponse)(nil),            // 35: donorvault.v1.ClaimAllResponse
	(*PendingEntitlementRequest)(nil),   // 36: donorvault.v1.PendingEntitlementRequest
	(*PendingEntitlementResponse)(nil),  // 37: donorvault.v1.PendingEntitlementResponse
	(*SetPreferenceRequest)(nil),        // 38: donorvault.v1.SetPreferenceRequest
	(*SetPreferenceResponse)(nil),       // 39: donorvault.v1.SetPreferenceResponse
	(*GetPreferenceRequest)(nil),        // 40: donorvault.v1.GetPreferenceRequest
	(*GetPreferenceResponse)(nil),       // 41: donorvault.v1.GetPreferenceResponse
	(*ReleaseEscrowRequest)(nil),        // 42: donorvault.v1.ReleaseEscrowRequest
	(*ReleaseEscrowResponse)(nil),       // 43: donorvault.v1.ReleaseEscrowResponse
	(*RefundEscrowRequest)(nil),         // 44: donorvault.v1.RefundEscrowRequest
	(*RefundEscrowResponse)(nil),        // 45: donorvault.v1.RefundEscrowResponse
	(*SubmitCampaignRequest)(nil),       // 46: donorvault.v1.SubmitCampaignRequest
	(*SubmitCampaignResponse)(nil),      // 47: donorvault.v1.SubmitCampaignResponse
	(*CampaignActionRequest)(nil),       // 48: donorvault.v1.CampaignActionRequest
	(*CampaignActionResponse)(nil),      // 49: donorvault.v1.CampaignActionResponse
	(*StakeRequest)(nil),                // 50: donorvault.v1.StakeRequest
	(*StakeResponse)(nil),               // 51: donorvault.v1.StakeResponse
	(*UnstakeRequest)(nil),              // 52: donorvault.v1.UnstakeRequest
	(*UnstakeResponse)(nil),             // 53: donorvault.v1.UnstakeResponse
	(*GetCampaignRequest)(nil),          // 54: donorvault.v1.GetCampaignRequest
	(*GetCampaignResponse)(nil),         // 55: donorvault.v1.GetCampaignResponse
	(*ListCampaignsRequest)(nil),        // 56: donorvault.v1.ListCampaignsRequest
	(*ListCampaignsResponse)(nil),       // 57: donorvault.v1.ListCampaignsResponse
	(*ScheduleCheckpointRequest)(nil),   // 58: donorvault.v1.ScheduleCheckpointRequest
	(*ScheduleCheckpointResponse)(nil),  // 59: donorvault.v1.ScheduleCheckpointResponse
	(*CastVoteRequest)(nil),             // 60: donorvault.v1.CastVoteRequest
	(*CastVoteResponse)(nil),            // 61: donorvault.v1.CastVoteResponse
	(*FinalizeCheckpointRequest)(nil),   // 62: donorvault.v1.FinalizeCheckpointRequest
	(*FinalizeCheckpointResponse)(nil),  // 63: donorvault.v1.FinalizeCheckpointResponse
	(*GetCheckpointRequest)(nil),        // 64: donorvault.v1.GetCheckpointRequest
	(*GetCheckpointResponse)(nil),       // 65: donorvault.v1.GetCheckpointResponse
	(*ListCheckpointsRequest)(nil),      // 66: donorvault.v1.ListCheckpointsRequest
	(*ListCheckpointsResponse)(nil),     // 67: donorvault.v1.ListCheckpointsResponse
	(*timestamppb.Timestamp)(nil),       // 68: google.protobuf.Timestamp
}
var file_donorvault_v1_donorvault_proto_depIdxs = []int32{
	68, // 0: donorvault.v1.Vault.last_harvest_time:type_name -> google.protobuf.Timestamp
	0,  // 1: donorvault.v1.Vault.mode:type_name -> donorvault.v1.VaultMode
	1,  // 2: donorvault.v1.Campaign.status:type_name -> donorvault.v1.CampaignStatus
	68, // 3: donorvault.v1.Campaign.created_at:type_name -> google.protobuf.Timestamp
	68, // 4: donorvault.v1.Checkpoint.vote_deadline:type_name -> google.protobuf.Timestamp
	2,  // 5: donorvault.v1.Checkpoint.status:type_name -> donorvault.v1.CheckpointStatus
	3,  // 6: donorvault.v1.GetVaultResponse.vault:type_name -> donorvault.v1.Vault
	33, // 7: donorvault.v1.ClaimAllResponse.claims:type_name -> donorvault.v1.ClaimResponse
	4,  // 8: donorvault.v1.SubmitCampaignResponse.campaign:type_name -> donorvault.v1.Campaign
	4,  // 9: donorvault.v1.GetCampaignResponse.campaign:type_name -> donorvault.v1.Campaign
	1,  // 10: donorvault.v1.ListCampaignsRequest.status:type_name -> donorvault.v1.CampaignStatus
	4,  // 11: donorvault.v1.ListCampaignsResponse.campaigns:type_name -> donorvault.v1.Campaign
	68, // 12: donorvault.v1.ScheduleCheckpointRequest.vote_deadline:type_name -> google.protobuf.Timestamp
	5,  // 13: donorvault.v1.ScheduleCheckpointResponse.checkpoint:type_name -> donorvault.v1.Checkpoint
	5,  // 14: donorvault.v1.FinalizeCheckpointResponse.checkpoint:type_name -> donorvault.v1.Checkpoint
	5,  // 15: donorvault.v1.GetCheckpointResponse.checkpoint:type_name -> donorvault.v1.Checkpoint
	5,  // 16: donorvault.v1.ListCheckpointsResponse.checkpoints:type_name -> donorvault.v1.Checkpoint
	6,  // 17: donorvault.v1.DonorVaultService.Deposit:input_type -> donorvault.v1.DepositRequest
	8,  // 18: donorvault.v1.DonorVaultService.Mint:input_type -> donorvault.v1.MintRequest
	10, // 19: donorvault.v1.DonorVaultService.Withdraw:input_type -> donorvault.v1.WithdrawRequest
	12, // 20: donorvault.v1.DonorVaultService.Redeem:input_type -> donorvault.v1.RedeemRequest
	14, // 21: donorvault.v1.DonorVaultService.Approve:input_type -> donorvault.v1.ApproveRequest
	16, // 22: donorvault.v1.DonorVaultService.Harvest:input_type -> donorvault.v1.HarvestRequest
	18, // 23: donorvault.v1.DonorVaultService.SetAdapter:input_type -> donorvault.v1.SetAdapterRequest
	20, // 24: donorvault.v1.DonorVaultService.PauseVault:input_type -> donorvault.v1.PauseVaultRequest
	22, // 25: donorvault.v1.DonorVaultService.ResumeVault:input_type -> donorvault.v1.ResumeVaultRequest
	24, // 26: donorvault.v1.DonorVaultService.EmergencyShutdown:input_type -> donorvault.v1.EmergencyShutdownRequest
	26, // 27: donorvault.v1.DonorVaultService.ResumeFromEmergency:input_type -> donorvault.v1.ResumeFromEmergencyRequest
	28, // 28: donorvault.v1.DonorVaultService.EmergencyWithdraw:input_type -> donorvault.v1.EmergencyWithdrawRequest
	30, // 29: donorvault.v1.DonorVaultService.GetVault:input_type -> donorvault.v1.GetVaultRequest
	32, // 30: donorvault.v1.DonorVaultService.Claim:input_type -> donorvault.v1.ClaimRequest
	34, // 31: donorvault.v1.DonorVaultService.ClaimAll:input_type -> donorvault.v1.ClaimAllRequest
	36, // 32: donorvault.v1.DonorVaultService.PendingEntitlement:input_type -> donorvault.v1.PendingEntitlementRequest
	38, // 33: donorvault.v1.DonorVaultService.SetPreference:input_type -> donorvault.v1.SetPreferenceRequest
	40, // 34: donorvault.v1.DonorVaultService.GetPreference:input_type -> donorvault.v1.GetPreferenceRequest
	42, // 35: donorvault.v1.DonorVaultService.ReleaseEscrow:input_type -> donorvault.v1.ReleaseEscrowRequest
	44, // 36: donorvault.v1.DonorVaultService.RefundEscrow:input_type -> donorvault.v1.RefundEscrowRequest
	46, // 37: donorvault.v1.DonorVaultService.SubmitCampaign:input_type -> donorvault.v1.SubmitCampaignRequest
	48, // 38: donorvault.v1.DonorVaultService.ApproveCampaign:input_type -> donorvault.v1.CampaignActionRequest
	48, // 39: donorvault.v1.DonorVaultService.ActivateCampaign:input_type -> donorvault.v1.CampaignActionRequest
	48, // 40: donorvault.v1.DonorVaultService.PauseCampaign:input_type -> donorvault.v1.CampaignActionRequest
	48, // 41: donorvault.v1.DonorVaultService.ResumeCampaign:input_type -> donorvault.v1.CampaignActionRequest
	48, // 42: donorvault.v1.DonorVaultService.CompleteCampaign:input_type -> donorvault.v1.CampaignActionRequest
	48, // 43: donorvault.v1.DonorVaultService.CancelCampaign:input_type -> donorvault.v1.CampaignActionRequest
	50, // 44: donorvault.v1.DonorVaultService.Stake:input_type -> donorvault.v1.StakeRequest
	52, // 45: donorvault.v1.DonorVaultService.Unstake:input_type -> donorvault.v1.UnstakeRequest
	54, // 46: donorvault.v1.DonorVaultService.GetCampaign:input_type -> donorvault.v1.GetCampaignRequest
	56, // 47: donorvault.v1.DonorVaultService.ListCampaigns:input_type -> donorvault.v1.ListCampaignsRequest
	58, // 48: donorvault.v1.DonorVaultService.ScheduleCheckpoint:input_type -> donorvault.v1.ScheduleCheckpointRequest
	60, // 49: donorvault.v1.DonorVaultService.CastVote:input_type -> donorvault.v1.CastVoteRequest
	62, // 50: donorvault.v1.DonorVaultService.FinalizeCheckpoint:input_type -> donorvault.v1.FinalizeCheckpointRequest
	48, // 51: donorvault.v1.DonorVaultService.ClearHalt:input_type -> donorvault.v1.CampaignActionRequest
	64, // 52: donorvault.v1.DonorVaultService.GetCheckpoint:input_type -> donorvault.v1.GetCheckpointRequest
	66, // 53: donorvault.v1.DonorVaultService.ListCheckpoints:input_type -> donorvault.v1.ListCheckpointsRequest
	7,  // 54: donorvault.v1.DonorVaultService.Deposit:output_type -> donorvault.v1.DepositResponse
	9,  // 55: donorvault.v1.DonorVaultService.Mint:output_type -> donorvault.v1.MintResponse
	11, // 56: donorvault.v1.DonorVaultService.Withdraw:output_type -> donorvault.v1.WithdrawResponse
	13, // 57: donorvault.v1.DonorVaultService.Redeem:output_type -> donorvault.v1.RedeemResponse
	15, // 58: donorvault.v1.DonorVaultService.Approve:output_type -> donorvault.v1.ApproveResponse
	17, // 59: donorvault.v1.DonorVaultService.Harvest:output_type -> donorvault.v1.HarvestResponse
	19, // 60: donorvault.v1.DonorVaultService.SetAdapter:output_type -> donorvault.v1.SetAdapterResponse
	21, // 61: donorvault.v1.DonorVaultService.PauseVault:output_type -> donorvault.v1.PauseVaultResponse
	23, // 62: donorvault.v1.DonorVaultService.ResumeVault:output_type -> donorvault.v1.ResumeVaultResponse
	25, // 63: donorvault.v1.DonorVaultService.EmergencyShutdown:output_type -> donorvault.v1.EmergencyShutdownResponse
	27, // 64: donorvault.v1.DonorVaultService.ResumeFromEmergency:output_type -> donorvault.v1.ResumeFromEmergencyResponse
	29, // 65: donorvault.v1.DonorVaultService.EmergencyWithdraw:output_type -> donorvault.v1.EmergencyWithdrawResponse
	31, // 66: donorvault.v1.DonorVaultService.GetVault:output_type -> donorvault.v1.GetVaultResponse
	33, // 67: donorvault.v1.DonorVaultService.Claim:output_type -> donorvault.v1.ClaimResponse
	35, // 68: donorvault.v1.DonorVaultService.ClaimAll:output_type -> donorvault.v1.ClaimAllResponse
	37, // 69: donorvault.v1.DonorVaultService.PendingEntitlement:output_type -> donorvault.v1.PendingEntitlementResponse
	39, // 70: donorvault.v1.DonorVaultService.SetPreference:output_type -> donorvault.v1.SetPreferenceResponse
	41, // 71: donorvault.v1.DonorVaultService.GetPreference:output_type -> donorvault.v1.GetPreferenceResponse
	43, // 72: donorvault.v1.DonorVaultService.ReleaseEscrow:output_type -> donorvault.v1.ReleaseEscrowResponse
	45, // 73: donorvault.v1.DonorVaultService.RefundEscrow:output_type -> donorvault.v1.RefundEscrowResponse
	47, // 74: donorvault.v1.DonorVaultService.SubmitCampaign:output_type -> donorvault.v1.SubmitCampaignResponse
	49, // 75: donorvault.v1.DonorVaultService.ApproveCampaign:output_type -> donorvault.v1.CampaignActionResponse
	49, // 76: donorvault.v1.DonorVaultService.ActivateCampaign:output_type -> donorvault.v1.CampaignActionResponse
	49, // 77: donorvault.v1.DonorVaultService.PauseCampaign:output_type -> donorvault.v1.CampaignActionResponse
	49, // 78: donorvault.v1.DonorVaultService.ResumeCampaign:output_type -> donorvault.v1.CampaignActionResponse
	49, // 79: donorvault.v1.DonorVaultService.CompleteCampaign:output_type -> donorvault.v1.CampaignActionResponse
	49, // 80: donorvault.v1.DonorVaultService.CancelCampaign:output_type -> donorvault.v1.CampaignActionResponse
	51, // 81: donorvault.v1.DonorVaultService.Stake:output_type -> donorvault.v1.StakeResponse
	53, // 82: donorvault.v1.DonorVaultService.Unstake:output_type -> donorvault.v1.UnstakeResponse
	55, // 83: donorvault.v1.DonorVaultService.GetCampaign:output_type -> donorvault.v1.GetCampaignResponse
	57, // 84: donorvault.v1.DonorVaultService.ListCampaigns:output_type -> donorvault.v1.ListCampaignsResponse
	59, // 85: donorvault.v1.DonorVaultService.ScheduleCheckpoint:output_type -> donorvault.v1.ScheduleCheckpointResponse
	61, // 86: donorvault.v1.DonorVaultService.CastVote:output_type -> donorvault.v1.CastVoteResponse
	63, // 87: donorvault.v1.DonorVaultService.FinalizeCheckpoint:output_type -> donorvault.v1.FinalizeCheckpointResponse
	49, // 88: donorvault.v1.DonorVaultService.ClearHalt:output_type -> donorvault.v1.CampaignActionResponse
	65, // 89: donorvault.v1.DonorVaultService.GetCheckpoint:output_type -> donorvault.v1.GetCheckpointResponse
	67, // 90: donorvault.v1.DonorVaultService.ListCheckpoints:output_type -> donorvault.v1.ListCheckpointsResponse
	54, // [54:91] is the sub-list for method output_type
	17, // [17:54] is the sub-list for method input_type
	17, // [17:17] is the sub-list for extension type_name
	17, // [17:17] is the sub-list for extension extendee
	0,  // [0:17] is the sub-list for field type_name
}

func init() { file_donorvault_v1_donorvault_proto_init() }
func file_donorvault_v1_donorvault_proto_init() {
	if File_donorvault_v1_donorvault_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_donorvault_v1_donorvault_proto_rawDesc), len(file_donorvault_v1_donorvault_proto_rawDesc)),
			NumEnums:      3,
			NumMessages:   65,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_donorvault_v1_donorvault_proto_goTypes,
		DependencyIndexes: file_donorvault_v1_donorvault_proto_depIdxs,
		EnumInfos:         file_donorvault_v1_donorvault_proto_enumTypes,
		MessageInfos:      file_donorvault_v1_donorvault_proto_msgTypes,
	}.Build()
	File_donorvault_v1_donorvault_proto = out.File
	file_donorvault_v1_donorvault_proto_goTypes = nil
	file_donorvault_v1_donorvault_proto_depIdxs = nil
}
