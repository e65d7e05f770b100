// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: contracts/v1/contracts.proto

package contractspb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type Contract struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CustomerName         string                 `protobuf:"bytes,2,opt,name=customer_name,json=customerName,proto3" json:"customer_name,omitempty"`
	CustomerAddress      string                 `protobuf:"bytes,3,opt,name=customer_address,json=customerAddress,proto3" json:"customer_address,omitempty"`
	CustomerNpwp         string                 `protobuf:"bytes,4,opt,name=customer_npwp,json=customerNpwp,proto3" json:"customer_npwp,omitempty"`
	RepresentativeName   string                 `protobuf:"bytes,5,opt,name=representative_name,json=representativeName,proto3" json:"representative_name,omitempty"`
	RepresentativeTitle  string                 `protobuf:"bytes,6,opt,name=representative_title,json=representativeTitle,proto3" json:"representative_title,omitempty"`
	ConnectivityCount    int32                  `protobuf:"varint,7,opt,name=connectivity_count,json=connectivityCount,proto3" json:"connectivity_count,omitempty"`
	NonConnectivityCount int32                  `protobuf:"varint,8,opt,name=non_connectivity_count,json=nonConnectivityCount,proto3" json:"non_connectivity_count,omitempty"`
	BundlingCount        int32                  `protobuf:"varint,9,opt,name=bundling_count,json=bundlingCount,proto3" json:"bundling_count,omitempty"`
	// Decimal amounts travel as strings to avoid float drift.
	InstallationCost     string `protobuf:"bytes,10,opt,name=installation_cost,json=installationCost,proto3" json:"installation_cost,omitempty"`
	SubscriptionCost     string `protobuf:"bytes,11,opt,name=subscription_cost,json=subscriptionCost,proto3" json:"subscription_cost,omitempty"`
	PaymentMethod        string `protobuf:"bytes,12,opt,name=payment_method,json=paymentMethod,proto3" json:"payment_method,omitempty"`
	PaymentDescription   string `protobuf:"bytes,13,opt,name=payment_description,json=paymentDescription,proto3" json:"payment_description,omitempty"`
	PaymentConfidence    string `protobuf:"bytes,14,opt,name=payment_confidence,json=paymentConfidence,proto3" json:"payment_confidence,omitempty"`
	ValidFrom            string `protobuf:"bytes,15,opt,name=valid_from,json=validFrom,proto3" json:"valid_from,omitempty"`    // YYYY-MM-DD, empty when unknown
	ValidUntil           string `protobuf:"bytes,16,opt,name=valid_until,json=validUntil,proto3" json:"valid_until,omitempty"` // YYYY-MM-DD, empty when unknown
	CustomerContactName  string `protobuf:"bytes,17,opt,name=customer_contact_name,json=customerContactName,proto3" json:"customer_contact_name,omitempty"`
	CustomerContactEmail string `protobuf:"bytes,18,opt,name=customer_contact_email,json=customerContactEmail,proto3" json:"customer_contact_email,omitempty"`
	CustomerContactPhone string `protobuf:"bytes,19,opt,name=customer_contact_phone,json=customerContactPhone,proto3" json:"customer_contact_phone,omitempty"`
	TelkomContactName    string `protobuf:"bytes,20,opt,name=telkom_contact_name,json=telkomContactName,proto3" json:"telkom_contact_name,omitempty"`
	TelkomContactEmail   string `protobuf:"bytes,21,opt,name=telkom_contact_email,json=telkomContactEmail,proto3" json:"telkom_contact_email,omitempty"`
	TelkomContactPhone   string `protobuf:"bytes,22,opt,name=telkom_contact_phone,json=telkomContactPhone,proto3" json:"telkom_contact_phone,omitempty"`
	CreatedAt            string `protobuf:"bytes,23,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt            string `protobuf:"bytes,24,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *Contract) Reset() {
	*x = Contract{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Contract) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Contract) ProtoMessage() {}

func (x *Contract) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Contract.ProtoReflect.Descriptor instead.
func (*Contract) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{0}
}

func (x *Contract) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Contract) GetCustomerName() string {
	if x != nil {
		return x.CustomerName
	}
	return ""
}

func (x *Contract) GetCustomerAddress() string {
	if x != nil {
		return x.CustomerAddress
	}
	return ""
}

func (x *Contract) GetCustomerNpwp() string {
	if x != nil {
		return x.CustomerNpwp
	}
	return ""
}

func (x *Contract) GetRepresentativeName() string {
	if x != nil {
		return x.RepresentativeName
	}
	return ""
}

func (x *Contract) GetRepresentativeTitle() string {
	if x != nil {
		return x.RepresentativeTitle
	}
	return ""
}

func (x *Contract) GetConnectivityCount() int32 {
	if x != nil {
		return x.ConnectivityCount
	}
	return 0
}

func (x *Contract) GetNonConnectivityCount() int32 {
	if x != nil {
		return x.NonConnectivityCount
	}
	return 0
}

func (x *Contract) GetBundlingCount() int32 {
	if x != nil {
		return x.BundlingCount
	}
	return 0
}

func (x *Contract) GetInstallationCost() string {
	if x != nil {
		return x.InstallationCost
	}
	return ""
}

func (x *Contract) GetSubscriptionCost() string {
	if x != nil {
		return x.SubscriptionCost
	}
	return ""
}

func (x *Contract) GetPaymentMethod() string {
	if x != nil {
		return x.PaymentMethod
	}
	return ""
}

func (x *Contract) GetPaymentDescription() string {
	if x != nil {
		return x.PaymentDescription
	}
	return ""
}

func (x *Contract) GetPaymentConfidence() string {
	if x != nil {
		return x.PaymentConfidence
	}
	return ""
}

func (x *Contract) GetValidFrom() string {
	if x != nil {
		return x.ValidFrom
	}
	return ""
}

func (x *Contract) GetValidUntil() string {
	if x != nil {
		return x.ValidUntil
	}
	return ""
}

func (x *Contract) GetCustomerContactName() string {
	if x != nil {
		return x.CustomerContactName
	}
	return ""
}

func (x *Contract) GetCustomerContactEmail() string {
	if x != nil {
		return x.CustomerContactEmail
	}
	return ""
}

func (x *Contract) GetCustomerContactPhone() string {
	if x != nil {
		return x.CustomerContactPhone
	}
	return ""
}

func (x *Contract) GetTelkomContactName() string {
	if x != nil {
		return x.TelkomContactName
	}
	return ""
}

func (x *Contract) GetTelkomContactEmail() string {
	if x != nil {
		return x.TelkomContactEmail
	}
	return ""
}

func (x *Contract) GetTelkomContactPhone() string {
	if x != nil {
		return x.TelkomContactPhone
	}
	return ""
}

func (x *Contract) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Contract) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type TerminPayment struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ContractId    string                 `protobuf:"bytes,2,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	Sequence      int32                  `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
	PeriodLabel   string                 `protobuf:"bytes,4,opt,name=period_label,json=periodLabel,proto3" json:"period_label,omitempty"`
	Amount        string                 `protobuf:"bytes,5,opt,name=amount,proto3" json:"amount,omitempty"`
	SourceText    string                 `protobuf:"bytes,6,opt,name=source_text,json=sourceText,proto3" json:"source_text,omitempty"`
	Synthesized   bool                   `protobuf:"varint,7,opt,name=synthesized,proto3" json:"synthesized,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TerminPayment) Reset() {
	*x = TerminPayment{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TerminPayment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TerminPayment) ProtoMessage() {}

func (x *TerminPayment) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TerminPayment.ProtoReflect.Descriptor instead.
func (*TerminPayment) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{1}
}

func (x *TerminPayment) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *TerminPayment) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

func (x *TerminPayment) GetSequence() int32 {
	if x != nil {
		return x.Sequence
	}
	return 0
}

func (x *TerminPayment) GetPeriodLabel() string {
	if x != nil {
		return x.PeriodLabel
	}
	return ""
}

func (x *TerminPayment) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *TerminPayment) GetSourceText() string {
	if x != nil {
		return x.SourceText
	}
	return ""
}

func (x *TerminPayment) GetSynthesized() bool {
	if x != nil {
		return x.Synthesized
	}
	return false
}

type ExtractJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileId        string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	ContractId    string                 `protobuf:"bytes,3,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	Format        string                 `protobuf:"bytes,4,opt,name=format,proto3" json:"format,omitempty"`
	StartedAt     string                 `protobuf:"bytes,5,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,6,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	Status        string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,8,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	NeedsReview   bool                   `protobuf:"varint,9,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractJob) Reset() {
	*x = ExtractJob{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractJob) ProtoMessage() {}

func (x *ExtractJob) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractJob.ProtoReflect.Descriptor instead.
func (*ExtractJob) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{2}
}

func (x *ExtractJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtractJob) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *ExtractJob) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

func (x *ExtractJob) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *ExtractJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ExtractJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *ExtractJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExtractJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ExtractJob) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

type ExtractContractRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Filename string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	FilePath string                 `protobuf:"bytes,2,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	// Raw OCR output for page 1, JSON-encoded. Accepts a JSON array of
	// strings or an object keyed by recognized_text/texts/lines/fragments.
	Page1Tokens []byte `protobuf:"bytes,3,opt,name=page1_tokens,json=page1Tokens,proto3" json:"page1_tokens,omitempty"`
	// Optional page 2 dump in the same shape.
	Page2Tokens   []byte `protobuf:"bytes,4,opt,name=page2_tokens,json=page2Tokens,proto3" json:"page2_tokens,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractContractRequest) Reset() {
	*x = ExtractContractRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractContractRequest) ProtoMessage() {}

func (x *ExtractContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractContractRequest.ProtoReflect.Descriptor instead.
func (*ExtractContractRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{3}
}

func (x *ExtractContractRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExtractContractRequest) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *ExtractContractRequest) GetPage1Tokens() []byte {
	if x != nil {
		return x.Page1Tokens
	}
	return nil
}

func (x *ExtractContractRequest) GetPage2Tokens() []byte {
	if x != nil {
		return x.Page2Tokens
	}
	return nil
}

type ExtractContractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ExtractJob            `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractContractResponse) Reset() {
	*x = ExtractContractResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractContractResponse) ProtoMessage() {}

func (x *ExtractContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractContractResponse.ProtoReflect.Descriptor instead.
func (*ExtractContractResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{4}
}

func (x *ExtractContractResponse) GetJob() *ExtractJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetContractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractId    string                 `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractRequest) Reset() {
	*x = GetContractRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractRequest) ProtoMessage() {}

func (x *GetContractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractRequest.ProtoReflect.Descriptor instead.
func (*GetContractRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{5}
}

func (x *GetContractRequest) GetContractId() string {
	if x != nil {
		return x.ContractId
	}
	return ""
}

type GetContractResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Contract       *Contract              `protobuf:"bytes,1,opt,name=contract,proto3" json:"contract,omitempty"`
	TerminPayments []*TerminPayment       `protobuf:"bytes,2,rep,name=termin_payments,json=terminPayments,proto3" json:"termin_payments,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetContractResponse) Reset() {
	*x = GetContractResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractResponse) ProtoMessage() {}

func (x *GetContractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractResponse.ProtoReflect.Descriptor instead.
func (*GetContractResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{6}
}

func (x *GetContractResponse) GetContract() *Contract {
	if x != nil {
		return x.Contract
	}
	return nil
}

func (x *GetContractResponse) GetTerminPayments() []*TerminPayment {
	if x != nil {
		return x.TerminPayments
	}
	return nil
}

type ListContractsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContractsRequest) Reset() {
	*x = ListContractsRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsRequest) ProtoMessage() {}

func (x *ListContractsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsRequest.ProtoReflect.Descriptor instead.
func (*ListContractsRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{7}
}

func (x *ListContractsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListContractsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListContractsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contracts     []*Contract            `protobuf:"bytes,1,rep,name=contracts,proto3" json:"contracts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContractsResponse) Reset() {
	*x = ListContractsResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContractsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContractsResponse) ProtoMessage() {}

func (x *ListContractsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContractsResponse.ProtoReflect.Descriptor instead.
func (*ListContractsResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{8}
}

func (x *ListContractsResponse) GetContracts() []*Contract {
	if x != nil {
		return x.Contracts
	}
	return nil
}

type GetExtractJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractJobRequest) Reset() {
	*x = GetExtractJobRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractJobRequest) ProtoMessage() {}

func (x *GetExtractJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractJobRequest.ProtoReflect.Descriptor instead.
func (*GetExtractJobRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{9}
}

func (x *GetExtractJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetExtractJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ExtractJob            `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractJobResponse) Reset() {
	*x = GetExtractJobResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractJobResponse) ProtoMessage() {}

func (x *GetExtractJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractJobResponse.ProtoReflect.Descriptor instead.
func (*GetExtractJobResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{10}
}

func (x *GetExtractJobResponse) GetJob() *ExtractJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ExportContractsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`       // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`             // YYYY-MM-DD, optional
	OutputPath    string                 `protobuf:"bytes,3,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"` // server-side path for the workbook
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContractsRequest) Reset() {
	*x = ExportContractsRequest{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContractsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContractsRequest) ProtoMessage() {}

func (x *ExportContractsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContractsRequest.ProtoReflect.Descriptor instead.
func (*ExportContractsRequest) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{11}
}

func (x *ExportContractsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportContractsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ExportContractsRequest) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

type ExportContractsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FilePath      string                 `protobuf:"bytes,1,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	ContractCount int32                  `protobuf:"varint,2,opt,name=contract_count,json=contractCount,proto3" json:"contract_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportContractsResponse) Reset() {
	*x = ExportContractsResponse{}
	mi := &file_contracts_v1_contracts_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportContractsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportContractsResponse) ProtoMessage() {}

func (x *ExportContractsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_contracts_v1_contracts_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportContractsResponse.ProtoReflect.Descriptor instead.
func (*ExportContractsResponse) Descriptor() ([]byte, []int) {
	return file_contracts_v1_contracts_proto_rawDescGZIP(), []int{12}
}

func (x *ExportContractsResponse) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *ExportContractsResponse) GetContractCount() int32 {
	if x != nil {
		return x.ContractCount
	}
	return 0
}

var File_contracts_v1_contracts_proto protoreflect.FileDescriptor

const file_contracts_v1_contracts_proto_rawDesc = "" +
	"\n" +
	"\x1ccontracts/v1/contracts.proto\x12\fcontracts.v1\"\x92\b\n" +
	"\bContract\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rcustomer_name\x18\x02 \x01(\tR\fcustomerName\x12)\n" +
	"\x10customer_address\x18\x03 \x01(\tR\x0fcustomerAddress\x12#\n" +
	"\rcustomer_npwp\x18\x04 \x01(\tR\fcustomerNpwp\x12/\n" +
	"\x13representative_name\x18\x05 \x01(\tR\x12representativeName\x121\n" +
	"\x14representative_title\x18\x06 \x01(\tR\x13representativeTitle\x12-\n" +
	"\x12connectivity_count\x18\a \x01(\x05R\x11connectivityCount\x124\n" +
	"\x16non_connectivity_count\x18\b \x01(\x05R\x14nonConnectivityCount\x12%\n" +
	"\x0ebundling_count\x18\t \x01(\x05R\rbundlingCount\x12+\n" +
	"\x11installation_cost\x18\n" +
	" \x01(\tR\x10installationCost\x12+\n" +
	"\x11subscription_cost\x18\v \x01(\tR\x10subscriptionCost\x12%\n" +
	"\x0epayment_method\x18\f \x01(\tR\rpaymentMethod\x12/\n" +
	"\x13payment_description\x18\r \x01(\tR\x12paymentDescription\x12-\n" +
	"\x12payment_confidence\x18\x0e \x01(\tR\x11paymentConfidence\x12\x1d\n" +
	"\n" +
	"valid_from\x18\x0f \x01(\tR\tvalidFrom\x12\x1f\n" +
	"\vvalid_until\x18\x10 \x01(\tR\n" +
	"validUntil\x122\n" +
	"\x15customer_contact_name\x18\x11 \x01(\tR\x13customerContactName\x124\n" +
	"\x16customer_contact_email\x18\x12 \x01(\tR\x14customerContactEmail\x124\n" +
	"\x16customer_contact_phone\x18\x13 \x01(\tR\x14customerContactPhone\x12.\n" +
	"\x13telkom_contact_name\x18\x14 \x01(\tR\x11telkomContactName\x120\n" +
	"\x14telkom_contact_email\x18\x15 \x01(\tR\x12telkomContactEmail\x120\n" +
	"\x14telkom_contact_phone\x18\x16 \x01(\tR\x12telkomContactPhone\x12\x1d\n" +
	"\n" +
	"created_at\x18\x17 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x18 \x01(\tR\tupdatedAt\"\xda\x01\n" +
	"\rTerminPayment\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vcontract_id\x18\x02 \x01(\tR\n" +
	"contractId\x12\x1a\n" +
	"\bsequence\x18\x03 \x01(\x05R\bsequence\x12!\n" +
	"\fperiod_label\x18\x04 \x01(\tR\vperiodLabel\x12\x16\n" +
	"\x06amount\x18\x05 \x01(\tR\x06amount\x12\x1f\n" +
	"\vsource_text\x18\x06 \x01(\tR\n" +
	"sourceText\x12 \n" +
	"\vsynthesized\x18\a \x01(\bR\vsynthesized\"\x8e\x02\n" +
	"\n" +
	"ExtractJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x1f\n" +
	"\vcontract_id\x18\x03 \x01(\tR\n" +
	"contractId\x12\x16\n" +
	"\x06format\x18\x04 \x01(\tR\x06format\x12\x1d\n" +
	"\n" +
	"started_at\x18\x05 \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\x06 \x01(\tR\n" +
	"finishedAt\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\b \x01(\tR\ferrorMessage\x12!\n" +
	"\fneeds_review\x18\t \x01(\bR\vneedsReview\"\x97\x01\n" +
	"\x16ExtractContractRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x1b\n" +
	"\tfile_path\x18\x02 \x01(\tR\bfilePath\x12!\n" +
	"\fpage1_tokens\x18\x03 \x01(\fR\vpage1Tokens\x12!\n" +
	"\fpage2_tokens\x18\x04 \x01(\fR\vpage2Tokens\"E\n" +
	"\x17ExtractContractResponse\x12*\n" +
	"\x03job\x18\x01 \x01(\v2\x18.contracts.v1.ExtractJobR\x03job\"5\n" +
	"\x12GetContractRequest\x12\x1f\n" +
	"\vcontract_id\x18\x01 \x01(\tR\n" +
	"contractId\"\x8f\x01\n" +
	"\x13GetContractResponse\x122\n" +
	"\bcontract\x18\x01 \x01(\v2\x16.contracts.v1.ContractR\bcontract\x12D\n" +
	"\x0ftermin_payments\x18\x02 \x03(\v2\x1b.contracts.v1.TerminPaymentR\x0eterminPayments\"L\n" +
	"\x14ListContractsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"M\n" +
	"\x15ListContractsResponse\x124\n" +
	"\tcontracts\x18\x01 \x03(\v2\x16.contracts.v1.ContractR\tcontracts\"-\n" +
	"\x14GetExtractJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"C\n" +
	"\x15GetExtractJobResponse\x12*\n" +
	"\x03job\x18\x01 \x01(\v2\x18.contracts.v1.ExtractJobR\x03job\"o\n" +
	"\x16ExportContractsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x1f\n" +
	"\voutput_path\x18\x03 \x01(\tR\n" +
	"outputPath\"]\n" +
	"\x17ExportContractsResponse\x12\x1b\n" +
	"\tfile_path\x18\x01 \x01(\tR\bfilePath\x12%\n" +
	"\x0econtract_count\x18\x02 \x01(\x05R\rcontractCount2\xcd\x01\n" +
	"\x11ExtractionService\x12^\n" +
	"\x0fExtractContract\x12$.contracts.v1.ExtractContractRequest\x1a%.contracts.v1.ExtractContractResponse\x12X\n" +
	"\rGetExtractJob\x12\".contracts.v1.GetExtractJobRequest\x1a#.contracts.v1.GetExtractJobResponse2\xa0\x02\n" +
	"\x10ContractsService\x12R\n" +
	"\vGetContract\x12 .contracts.v1.GetContractRequest\x1a!.contracts.v1.GetContractResponse\x12X\n" +
	"\rListContracts\x12\".contracts.v1.ListContractsRequest\x1a#.contracts.v1.ListContractsResponse\x12^\n" +
	"\x0fExportContracts\x12$.contracts.v1.ExportContractsRequest\x1a%.contracts.v1.ExportContractsResponseBLZJgithub.com/prasetyadi/contracts-tracker/gen/proto/contracts/v1;contractspbb\x06proto3"

var (
	file_contracts_v1_contracts_proto_rawDescOnce sync.Once
	file_contracts_v1_contracts_proto_rawDescData []byte
)

func file_contracts_v1_contracts_proto_rawDescGZIP() []byte {
	file_contracts_v1_contracts_proto_rawDescOnce.Do(func() {
		file_contracts_v1_contracts_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_contracts_v1_contracts_proto_rawDesc), len(file_contracts_v1_contracts_proto_rawDesc)))
	})
	return file_contracts_v1_contracts_proto_rawDescData
}

var file_contracts_v1_contracts_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_contracts_v1_contracts_proto_goTypes = []any{
	(*Contract)(nil),                // 0: contracts.v1.Contract
	(*TerminPayment)(nil),           // 1: contracts.v1.TerminPayment
	(*ExtractJob)(nil),              // 2: contracts.v1.ExtractJob
	(*ExtractContractRequest)(nil),  // 3: contracts.v1.ExtractContractRequest
	(*ExtractContractResponse)(nil), // 4: contracts.v1.ExtractContractResponse
	(*GetContractRequest)(nil),      // 5: contracts.v1.GetContractRequest
	(*GetContractResponse)(nil),     // 6: contracts.v1.GetContractResponse
	(*ListContractsRequest)(nil),    // 7: contracts.v1.ListContractsRequest
	(*ListContractsResponse)(nil),   // 8: contracts.v1.ListContractsResponse
	(*GetExtractJobRequest)(nil),    // 9: contracts.v1.GetExtractJobRequest
	(*GetExtractJobResponse)(nil),   // 10: contracts.v1.GetExtractJobResponse
	(*ExportContractsRequest)(nil),  // 11: contracts.v1.ExportContractsRequest
	(*ExportContractsResponse)(nil), // 12: contracts.v1.ExportContractsResponse
}
var file_contracts_v1_contracts_proto_depIdxs = []int32{
	2,  // 0: contracts.v1.ExtractContractResponse.job:type_name -> contracts.v1.ExtractJob
	0,  // 1: contracts.v1.GetContractResponse.contract:type_name -> contracts.v1.Contract
	1,  // 2: contracts.v1.GetContractResponse.termin_payments:type_name -> contracts.v1.TerminPayment
	0,  // 3: contracts.v1.ListContractsResponse.contracts:type_name -> contracts.v1.Contract
	2,  // 4: contracts.v1.GetExtractJobResponse.job:type_name -> contracts.v1.ExtractJob
	3,  // 5: contracts.v1.ExtractionService.ExtractContract:input_type -> contracts.v1.ExtractContractRequest
	9,  // 6: contracts.v1.ExtractionService.GetExtractJob:input_type -> contracts.v1.GetExtractJobRequest
	5,  // 7: contracts.v1.ContractsService.GetContract:input_type -> contracts.v1.GetContractRequest
	7,  // 8: contracts.v1.ContractsService.ListContracts:input_type -> contracts.v1.ListContractsRequest
	11, // 9: contracts.v1.ContractsService.ExportContracts:input_type -> contracts.v1.ExportContractsRequest
	4,  // 10: contracts.v1.ExtractionService.ExtractContract:output_type -> contracts.v1.ExtractContractResponse
	10, // 11: contracts.v1.ExtractionService.GetExtractJob:output_type -> contracts.v1.GetExtractJobResponse
	6,  // 12: contracts.v1.ContractsService.GetContract:output_type -> contracts.v1.GetContractResponse
	8,  // 13: contracts.v1.ContractsService.ListContracts:output_type -> contracts.v1.ListContractsResponse
	12, // 14: contracts.v1.ContractsService.ExportContracts:output_type -> contracts.v1.ExportContractsResponse
	10, // [10:15] is the sub-list for method output_type
	5,  // [5:10] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_contracts_v1_contracts_proto_init() }
func file_contracts_v1_contracts_proto_init() {
	if File_contracts_v1_contracts_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_contracts_v1_contracts_proto_rawDesc), len(file_contracts_v1_contracts_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_contracts_v1_contracts_proto_goTypes,
		DependencyIndexes: file_contracts_v1_contracts_proto_depIdxs,
		MessageInfos:      file_contracts_v1_contracts_proto_msgTypes,
	}.Build()
	File_contracts_v1_contracts_proto = out.File
	file_contracts_v1_contracts_proto_goTypes = nil
	file_contracts_v1_contracts_proto_depIdxs = nil
}
