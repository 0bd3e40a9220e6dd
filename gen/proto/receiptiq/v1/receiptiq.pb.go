// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: receiptiq/v1/receiptiq.proto

package receiptiqpb

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

type Project struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Project) Reset() {
	*x = Project{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Project) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Project) ProtoMessage() {}

func (x *Project) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Project.ProtoReflect.Descriptor instead.
func (*Project) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{0}
}

func (x *Project) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Project) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Project) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Project) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Project) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Project) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Field struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProjectId     string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	ParentId      string                 `protobuf:"bytes,3,opt,name=parent_id,json=parentId,proto3" json:"parent_id,omitempty"`
	Name          string                 `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	Type          string                 `protobuf:"bytes,5,opt,name=type,proto3" json:"type,omitempty"`
	Description   string                 `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	Children      []*Field               `protobuf:"bytes,7,rep,name=children,proto3" json:"children,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Field) Reset() {
	*x = Field{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Field) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Field) ProtoMessage() {}

func (x *Field) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Field.ProtoReflect.Descriptor instead.
func (*Field) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{1}
}

func (x *Field) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Field) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *Field) GetParentId() string {
	if x != nil {
		return x.ParentId
	}
	return ""
}

func (x *Field) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Field) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Field) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Field) GetChildren() []*Field {
	if x != nil {
		return x.Children
	}
	return nil
}

type Receipt struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProjectId     string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	FileName      string                 `protobuf:"bytes,3,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	MimeType      string                 `protobuf:"bytes,4,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,6,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Receipt) Reset() {
	*x = Receipt{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Receipt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Receipt) ProtoMessage() {}

func (x *Receipt) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Receipt.ProtoReflect.Descriptor instead.
func (*Receipt) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{2}
}

func (x *Receipt) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Receipt) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *Receipt) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *Receipt) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *Receipt) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Receipt) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Receipt) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Receipt) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type DataValue struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FieldId       string                 `protobuf:"bytes,2,opt,name=field_id,json=fieldId,proto3" json:"field_id,omitempty"`
	ReceiptId     string                 `protobuf:"bytes,3,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	Row           int32                  `protobuf:"varint,4,opt,name=row,proto3" json:"row,omitempty"`
	Value         string                 `protobuf:"bytes,5,opt,name=value,proto3" json:"value,omitempty"`
	QualifiedName string                 `protobuf:"bytes,6,opt,name=qualified_name,json=qualifiedName,proto3" json:"qualified_name,omitempty"`
	X             float64                `protobuf:"fixed64,7,opt,name=x,proto3" json:"x,omitempty"`
	Y             float64                `protobuf:"fixed64,8,opt,name=y,proto3" json:"y,omitempty"`
	Width         float64                `protobuf:"fixed64,9,opt,name=width,proto3" json:"width,omitempty"`
	Height        float64                `protobuf:"fixed64,10,opt,name=height,proto3" json:"height,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DataValue) Reset() {
	*x = DataValue{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DataValue) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DataValue) ProtoMessage() {}

func (x *DataValue) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DataValue.ProtoReflect.Descriptor instead.
func (*DataValue) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{3}
}

func (x *DataValue) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DataValue) GetFieldId() string {
	if x != nil {
		return x.FieldId
	}
	return ""
}

func (x *DataValue) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

func (x *DataValue) GetRow() int32 {
	if x != nil {
		return x.Row
	}
	return 0
}

func (x *DataValue) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *DataValue) GetQualifiedName() string {
	if x != nil {
		return x.QualifiedName
	}
	return ""
}

func (x *DataValue) GetX() float64 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *DataValue) GetY() float64 {
	if x != nil {
		return x.Y
	}
	return 0
}

func (x *DataValue) GetWidth() float64 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *DataValue) GetHeight() float64 {
	if x != nil {
		return x.Height
	}
	return 0
}

type CreateProjectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProjectRequest) Reset() {
	*x = CreateProjectRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProjectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProjectRequest) ProtoMessage() {}

func (x *CreateProjectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProjectRequest.ProtoReflect.Descriptor instead.
func (*CreateProjectRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{4}
}

func (x *CreateProjectRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *CreateProjectRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateProjectRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type CreateProjectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Project       *Project               `protobuf:"bytes,1,opt,name=project,proto3" json:"project,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProjectResponse) Reset() {
	*x = CreateProjectResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProjectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProjectResponse) ProtoMessage() {}

func (x *CreateProjectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProjectResponse.ProtoReflect.Descriptor instead.
func (*CreateProjectResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{5}
}

func (x *CreateProjectResponse) GetProject() *Project {
	if x != nil {
		return x.Project
	}
	return nil
}

type GetProjectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProjectRequest) Reset() {
	*x = GetProjectRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProjectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProjectRequest) ProtoMessage() {}

func (x *GetProjectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProjectRequest.ProtoReflect.Descriptor instead.
func (*GetProjectRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{6}
}

func (x *GetProjectRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type GetProjectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Project       *Project               `protobuf:"bytes,1,opt,name=project,proto3" json:"project,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProjectResponse) Reset() {
	*x = GetProjectResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProjectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProjectResponse) ProtoMessage() {}

func (x *GetProjectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProjectResponse.ProtoReflect.Descriptor instead.
func (*GetProjectResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{7}
}

func (x *GetProjectResponse) GetProject() *Project {
	if x != nil {
		return x.Project
	}
	return nil
}

type ListProjectsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProjectsRequest) Reset() {
	*x = ListProjectsRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProjectsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProjectsRequest) ProtoMessage() {}

func (x *ListProjectsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProjectsRequest.ProtoReflect.Descriptor instead.
func (*ListProjectsRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{8}
}

func (x *ListProjectsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type ListProjectsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Projects      []*Project             `protobuf:"bytes,1,rep,name=projects,proto3" json:"projects,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProjectsResponse) Reset() {
	*x = ListProjectsResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProjectsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProjectsResponse) ProtoMessage() {}

func (x *ListProjectsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProjectsResponse.ProtoReflect.Descriptor instead.
func (*ListProjectsResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{9}
}

func (x *ListProjectsResponse) GetProjects() []*Project {
	if x != nil {
		return x.Projects
	}
	return nil
}

type DeleteProjectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteProjectRequest) Reset() {
	*x = DeleteProjectRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteProjectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteProjectRequest) ProtoMessage() {}

func (x *DeleteProjectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteProjectRequest.ProtoReflect.Descriptor instead.
func (*DeleteProjectRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{10}
}

func (x *DeleteProjectRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type DeleteProjectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteProjectResponse) Reset() {
	*x = DeleteProjectResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteProjectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteProjectResponse) ProtoMessage() {}

func (x *DeleteProjectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteProjectResponse.ProtoReflect.Descriptor instead.
func (*DeleteProjectResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{11}
}

type ProcessProjectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessProjectRequest) Reset() {
	*x = ProcessProjectRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessProjectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessProjectRequest) ProtoMessage() {}

func (x *ProcessProjectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessProjectRequest.ProtoReflect.Descriptor instead.
func (*ProcessProjectRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{12}
}

func (x *ProcessProjectRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type ProcessProjectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Processed     int32                  `protobuf:"varint,1,opt,name=processed,proto3" json:"processed,omitempty"`
	Failed        int32                  `protobuf:"varint,2,opt,name=failed,proto3" json:"failed,omitempty"`
	Skipped       int32                  `protobuf:"varint,3,opt,name=skipped,proto3" json:"skipped,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessProjectResponse) Reset() {
	*x = ProcessProjectResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessProjectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessProjectResponse) ProtoMessage() {}

func (x *ProcessProjectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessProjectResponse.ProtoReflect.Descriptor instead.
func (*ProcessProjectResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{13}
}

func (x *ProcessProjectResponse) GetProcessed() int32 {
	if x != nil {
		return x.Processed
	}
	return 0
}

func (x *ProcessProjectResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *ProcessProjectResponse) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

type GetProjectDataRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProjectDataRequest) Reset() {
	*x = GetProjectDataRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProjectDataRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProjectDataRequest) ProtoMessage() {}

func (x *GetProjectDataRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProjectDataRequest.ProtoReflect.Descriptor instead.
func (*GetProjectDataRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{14}
}

func (x *GetProjectDataRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type ReceiptData struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	Values        []*DataValue           `protobuf:"bytes,2,rep,name=values,proto3" json:"values,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReceiptData) Reset() {
	*x = ReceiptData{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReceiptData) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReceiptData) ProtoMessage() {}

func (x *ReceiptData) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReceiptData.ProtoReflect.Descriptor instead.
func (*ReceiptData) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{15}
}

func (x *ReceiptData) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

func (x *ReceiptData) GetValues() []*DataValue {
	if x != nil {
		return x.Values
	}
	return nil
}

type GetProjectDataResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipts      []*ReceiptData         `protobuf:"bytes,1,rep,name=receipts,proto3" json:"receipts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProjectDataResponse) Reset() {
	*x = GetProjectDataResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProjectDataResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProjectDataResponse) ProtoMessage() {}

func (x *GetProjectDataResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProjectDataResponse.ProtoReflect.Descriptor instead.
func (*GetProjectDataResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{16}
}

func (x *GetProjectDataResponse) GetReceipts() []*ReceiptData {
	if x != nil {
		return x.Receipts
	}
	return nil
}

type ExportProjectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	Format        string                 `protobuf:"bytes,2,opt,name=format,proto3" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportProjectRequest) Reset() {
	*x = ExportProjectRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportProjectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportProjectRequest) ProtoMessage() {}

func (x *ExportProjectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportProjectRequest.ProtoReflect.Descriptor instead.
func (*ExportProjectRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{17}
}

func (x *ExportProjectRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *ExportProjectRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

type ExportProjectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportProjectResponse) Reset() {
	*x = ExportProjectResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportProjectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportProjectResponse) ProtoMessage() {}

func (x *ExportProjectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportProjectResponse.ProtoReflect.Descriptor instead.
func (*ExportProjectResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{18}
}

func (x *ExportProjectResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ExportProjectResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type CreateFieldRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	ParentId      string                 `protobuf:"bytes,2,opt,name=parent_id,json=parentId,proto3" json:"parent_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Type          string                 `protobuf:"bytes,4,opt,name=type,proto3" json:"type,omitempty"`
	Description   string                 `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFieldRequest) Reset() {
	*x = CreateFieldRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFieldRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFieldRequest) ProtoMessage() {}

func (x *CreateFieldRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFieldRequest.ProtoReflect.Descriptor instead.
func (*CreateFieldRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{19}
}

func (x *CreateFieldRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *CreateFieldRequest) GetParentId() string {
	if x != nil {
		return x.ParentId
	}
	return ""
}

func (x *CreateFieldRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateFieldRequest) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *CreateFieldRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type CreateFieldResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         *Field                 `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFieldResponse) Reset() {
	*x = CreateFieldResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFieldResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFieldResponse) ProtoMessage() {}

func (x *CreateFieldResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFieldResponse.ProtoReflect.Descriptor instead.
func (*CreateFieldResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{20}
}

func (x *CreateFieldResponse) GetField() *Field {
	if x != nil {
		return x.Field
	}
	return nil
}

type UpdateFieldRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FieldId       string                 `protobuf:"bytes,1,opt,name=field_id,json=fieldId,proto3" json:"field_id,omitempty"`
	Name          *string                `protobuf:"bytes,2,opt,name=name,proto3,oneof" json:"name,omitempty"`
	Description   *string                `protobuf:"bytes,3,opt,name=description,proto3,oneof" json:"description,omitempty"`
	ParentId      *string                `protobuf:"bytes,4,opt,name=parent_id,json=parentId,proto3,oneof" json:"parent_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFieldRequest) Reset() {
	*x = UpdateFieldRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFieldRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFieldRequest) ProtoMessage() {}

func (x *UpdateFieldRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFieldRequest.ProtoReflect.Descriptor instead.
func (*UpdateFieldRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{21}
}

func (x *UpdateFieldRequest) GetFieldId() string {
	if x != nil {
		return x.FieldId
	}
	return ""
}

func (x *UpdateFieldRequest) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *UpdateFieldRequest) GetDescription() string {
	if x != nil && x.Description != nil {
		return *x.Description
	}
	return ""
}

func (x *UpdateFieldRequest) GetParentId() string {
	if x != nil && x.ParentId != nil {
		return *x.ParentId
	}
	return ""
}

type UpdateFieldResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         *Field                 `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFieldResponse) Reset() {
	*x = UpdateFieldResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFieldResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFieldResponse) ProtoMessage() {}

func (x *UpdateFieldResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFieldResponse.ProtoReflect.Descriptor instead.
func (*UpdateFieldResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{22}
}

func (x *UpdateFieldResponse) GetField() *Field {
	if x != nil {
		return x.Field
	}
	return nil
}

type DeleteFieldRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FieldId       string                 `protobuf:"bytes,1,opt,name=field_id,json=fieldId,proto3" json:"field_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteFieldRequest) Reset() {
	*x = DeleteFieldRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteFieldRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteFieldRequest) ProtoMessage() {}

func (x *DeleteFieldRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteFieldRequest.ProtoReflect.Descriptor instead.
func (*DeleteFieldRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{23}
}

func (x *DeleteFieldRequest) GetFieldId() string {
	if x != nil {
		return x.FieldId
	}
	return ""
}

type DeleteFieldResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteFieldResponse) Reset() {
	*x = DeleteFieldResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteFieldResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteFieldResponse) ProtoMessage() {}

func (x *DeleteFieldResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteFieldResponse.ProtoReflect.Descriptor instead.
func (*DeleteFieldResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{24}
}

type ListFieldsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFieldsRequest) Reset() {
	*x = ListFieldsRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFieldsRequest) ProtoMessage() {}

func (x *ListFieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFieldsRequest.ProtoReflect.Descriptor instead.
func (*ListFieldsRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{25}
}

func (x *ListFieldsRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type ListFieldsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fields        []*Field               `protobuf:"bytes,1,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFieldsResponse) Reset() {
	*x = ListFieldsResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFieldsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFieldsResponse) ProtoMessage() {}

func (x *ListFieldsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFieldsResponse.ProtoReflect.Descriptor instead.
func (*ListFieldsResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{26}
}

func (x *ListFieldsResponse) GetFields() []*Field {
	if x != nil {
		return x.Fields
	}
	return nil
}

type UploadReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	FileName      string                 `protobuf:"bytes,2,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	MimeType      string                 `protobuf:"bytes,3,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadReceiptRequest) Reset() {
	*x = UploadReceiptRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadReceiptRequest) ProtoMessage() {}

func (x *UploadReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadReceiptRequest.ProtoReflect.Descriptor instead.
func (*UploadReceiptRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{27}
}

func (x *UploadReceiptRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *UploadReceiptRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *UploadReceiptRequest) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *UploadReceiptRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadReceiptResponse) Reset() {
	*x = UploadReceiptResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadReceiptResponse) ProtoMessage() {}

func (x *UploadReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadReceiptResponse.ProtoReflect.Descriptor instead.
func (*UploadReceiptResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{28}
}

func (x *UploadReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type GetReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptId     string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptRequest) Reset() {
	*x = GetReceiptRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptRequest) ProtoMessage() {}

func (x *GetReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptRequest.ProtoReflect.Descriptor instead.
func (*GetReceiptRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{29}
}

func (x *GetReceiptRequest) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

type GetReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	Values        []*DataValue           `protobuf:"bytes,2,rep,name=values,proto3" json:"values,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptResponse) Reset() {
	*x = GetReceiptResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptResponse) ProtoMessage() {}

func (x *GetReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptResponse.ProtoReflect.Descriptor instead.
func (*GetReceiptResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{30}
}

func (x *GetReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

func (x *GetReceiptResponse) GetValues() []*DataValue {
	if x != nil {
		return x.Values
	}
	return nil
}

type ListReceiptsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProjectId     string                 `protobuf:"bytes,1,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsRequest) Reset() {
	*x = ListReceiptsRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsRequest) ProtoMessage() {}

func (x *ListReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ListReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{31}
}

func (x *ListReceiptsRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type ListReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipts      []*Receipt             `protobuf:"bytes,1,rep,name=receipts,proto3" json:"receipts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsResponse) Reset() {
	*x = ListReceiptsResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsResponse) ProtoMessage() {}

func (x *ListReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ListReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{32}
}

func (x *ListReceiptsResponse) GetReceipts() []*Receipt {
	if x != nil {
		return x.Receipts
	}
	return nil
}

type DeleteReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptId     string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteReceiptRequest) Reset() {
	*x = DeleteReceiptRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteReceiptRequest) ProtoMessage() {}

func (x *DeleteReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteReceiptRequest.ProtoReflect.Descriptor instead.
func (*DeleteReceiptRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{33}
}

func (x *DeleteReceiptRequest) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

type DeleteReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteReceiptResponse) Reset() {
	*x = DeleteReceiptResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteReceiptResponse) ProtoMessage() {}

func (x *DeleteReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteReceiptResponse.ProtoReflect.Descriptor instead.
func (*DeleteReceiptResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{34}
}

type UpdateReceiptStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptId     string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateReceiptStatusRequest) Reset() {
	*x = UpdateReceiptStatusRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateReceiptStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateReceiptStatusRequest) ProtoMessage() {}

func (x *UpdateReceiptStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateReceiptStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateReceiptStatusRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{35}
}

func (x *UpdateReceiptStatusRequest) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

func (x *UpdateReceiptStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type UpdateReceiptStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateReceiptStatusResponse) Reset() {
	*x = UpdateReceiptStatusResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateReceiptStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateReceiptStatusResponse) ProtoMessage() {}

func (x *UpdateReceiptStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateReceiptStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateReceiptStatusResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{36}
}

func (x *UpdateReceiptStatusResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type ProcessReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptId     string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessReceiptRequest) Reset() {
	*x = ProcessReceiptRequest{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessReceiptRequest) ProtoMessage() {}

func (x *ProcessReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessReceiptRequest.ProtoReflect.Descriptor instead.
func (*ProcessReceiptRequest) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{37}
}

func (x *ProcessReceiptRequest) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

type ProcessReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	Values        []*DataValue           `protobuf:"bytes,2,rep,name=values,proto3" json:"values,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessReceiptResponse) Reset() {
	*x = ProcessReceiptResponse{}
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessReceiptResponse) ProtoMessage() {}

func (x *ProcessReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receiptiq_v1_receiptiq_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessReceiptResponse.ProtoReflect.Descriptor instead.
func (*ProcessReceiptResponse) Descriptor() ([]byte, []int) {
	return file_receiptiq_v1_receiptiq_proto_rawDescGZIP(), []int{38}
}

func (x *ProcessReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

func (x *ProcessReceiptResponse) GetValues() []*DataValue {
	if x != nil {
		return x.Values
	}
	return nil
}

var File_receiptiq_v1_receiptiq_proto protoreflect.FileDescriptor

const file_receiptiq_v1_receiptiq_proto_rawDesc = "" +
	"\n" +
	"\x1creceiptiq/v1/receiptiq.proto\x12\freceiptiq.v1\"\xa8\x01\n" +
	"\aProject\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"\xce\x01\n" +
	"\x05Field\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x1b\n" +
	"\tparent_id\x18\x03 \x01(\tR\bparentId\x12\x12\n" +
	"\x04name\x18\x04 \x01(\tR\x04name\x12\x12\n" +
	"\x04type\x18\x05 \x01(\tR\x04type\x12 \n" +
	"\vdescription\x18\x06 \x01(\tR\vdescription\x12/\n" +
	"\bchildren\x18\a \x03(\v2\x13.receiptiq.v1.FieldR\bchildren\"\xed\x01\n" +
	"\aReceipt\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x1b\n" +
	"\tfile_name\x18\x03 \x01(\tR\bfileName\x12\x1b\n" +
	"\tmime_type\x18\x04 \x01(\tR\bmimeType\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\x06 \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\b \x01(\tR\tupdatedAt\"\xee\x01\n" +
	"\tDataValue\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bfield_id\x18\x02 \x01(\tR\afieldId\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x03 \x01(\tR\treceiptId\x12\x10\n" +
	"\x03row\x18\x04 \x01(\x05R\x03row\x12\x14\n" +
	"\x05value\x18\x05 \x01(\tR\x05value\x12%\n" +
	"\x0equalified_name\x18\x06 \x01(\tR\rqualifiedName\x12\f\n" +
	"\x01x\x18\a \x01(\x01R\x01x\x12\f\n" +
	"\x01y\x18\b \x01(\x01R\x01y\x12\x14\n" +
	"\x05width\x18\t \x01(\x01R\x05width\x12\x16\n" +
	"\x06height\x18\n" +
	" \x01(\x01R\x06height\"g\n" +
	"\x14CreateProjectRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\"H\n" +
	"\x15CreateProjectResponse\x12/\n" +
	"\aproject\x18\x01 \x01(\v2\x15.receiptiq.v1.ProjectR\aproject\"2\n" +
	"\x11GetProjectRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"E\n" +
	"\x12GetProjectResponse\x12/\n" +
	"\aproject\x18\x01 \x01(\v2\x15.receiptiq.v1.ProjectR\aproject\"0\n" +
	"\x13ListProjectsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"I\n" +
	"\x14ListProjectsResponse\x121\n" +
	"\bprojects\x18\x01 \x03(\v2\x15.receiptiq.v1.ProjectR\bprojects\"5\n" +
	"\x14DeleteProjectRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"\x17\n" +
	"\x15DeleteProjectResponse\"6\n" +
	"\x15ProcessProjectRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"h\n" +
	"\x16ProcessProjectResponse\x12\x1c\n" +
	"\tprocessed\x18\x01 \x01(\x05R\tprocessed\x12\x16\n" +
	"\x06failed\x18\x02 \x01(\x05R\x06failed\x12\x18\n" +
	"\askipped\x18\x03 \x01(\x05R\askipped\"6\n" +
	"\x15GetProjectDataRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"o\n" +
	"\vReceiptData\x12/\n" +
	"\areceipt\x18\x01 \x01(\v2\x15.receiptiq.v1.ReceiptR\areceipt\x12/\n" +
	"\x06values\x18\x02 \x03(\v2\x17.receiptiq.v1.DataValueR\x06values\"O\n" +
	"\x16GetProjectDataResponse\x125\n" +
	"\breceipts\x18\x01 \x03(\v2\x19.receiptiq.v1.ReceiptDataR\breceipts\"M\n" +
	"\x14ExportProjectRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x16\n" +
	"\x06format\x18\x02 \x01(\tR\x06format\"M\n" +
	"\x15ExportProjectResponse\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"\x9a\x01\n" +
	"\x12CreateFieldRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x1b\n" +
	"\tparent_id\x18\x02 \x01(\tR\bparentId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x12\n" +
	"\x04type\x18\x04 \x01(\tR\x04type\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\"@\n" +
	"\x13CreateFieldResponse\x12)\n" +
	"\x05field\x18\x01 \x01(\v2\x13.receiptiq.v1.FieldR\x05field\"\xb8\x01\n" +
	"\x12UpdateFieldRequest\x12\x19\n" +
	"\bfield_id\x18\x01 \x01(\tR\afieldId\x12\x17\n" +
	"\x04name\x18\x02 \x01(\tH\x00R\x04name\x88\x01\x01\x12%\n" +
	"\vdescription\x18\x03 \x01(\tH\x01R\vdescription\x88\x01\x01\x12 \n" +
	"\tparent_id\x18\x04 \x01(\tH\x02R\bparentId\x88\x01\x01B\a\n" +
	"\x05_nameB\x0e\n" +
	"\f_descriptionB\f\n" +
	"\n" +
	"_parent_id\"@\n" +
	"\x13UpdateFieldResponse\x12)\n" +
	"\x05field\x18\x01 \x01(\v2\x13.receiptiq.v1.FieldR\x05field\"/\n" +
	"\x12DeleteFieldRequest\x12\x19\n" +
	"\bfield_id\x18\x01 \x01(\tR\afieldId\"\x15\n" +
	"\x13DeleteFieldResponse\"2\n" +
	"\x11ListFieldsRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"A\n" +
	"\x12ListFieldsResponse\x12+\n" +
	"\x06fields\x18\x01 \x03(\v2\x13.receiptiq.v1.FieldR\x06fields\"\x89\x01\n" +
	"\x14UploadReceiptRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\x12\x1b\n" +
	"\tfile_name\x18\x02 \x01(\tR\bfileName\x12\x1b\n" +
	"\tmime_type\x18\x03 \x01(\tR\bmimeType\x12\x18\n" +
	"\acontent\x18\x04 \x01(\fR\acontent\"H\n" +
	"\x15UploadReceiptResponse\x12/\n" +
	"\areceipt\x18\x01 \x01(\v2\x15.receiptiq.v1.ReceiptR\areceipt\"2\n" +
	"\x11GetReceiptRequest\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\"v\n" +
	"\x12GetReceiptResponse\x12/\n" +
	"\areceipt\x18\x01 \x01(\v2\x15.receiptiq.v1.ReceiptR\areceipt\x12/\n" +
	"\x06values\x18\x02 \x03(\v2\x17.receiptiq.v1.DataValueR\x06values\"4\n" +
	"\x13ListReceiptsRequest\x12\x1d\n" +
	"\n" +
	"project_id\x18\x01 \x01(\tR\tprojectId\"I\n" +
	"\x14ListReceiptsResponse\x121\n" +
	"\breceipts\x18\x01 \x03(\v2\x15.receiptiq.v1.ReceiptR\breceipts\"5\n" +
	"\x14DeleteReceiptRequest\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\"\x17\n" +
	"\x15DeleteReceiptResponse\"S\n" +
	"\x1aUpdateReceiptStatusRequest\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"N\n" +
	"\x1bUpdateReceiptStatusResponse\x12/\n" +
	"\areceipt\x18\x01 \x01(\v2\x15.receiptiq.v1.ReceiptR\areceipt\"6\n" +
	"\x15ProcessReceiptRequest\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\"z\n" +
	"\x16ProcessReceiptResponse\x12/\n" +
	"\areceipt\x18\x01 \x01(\v2\x15.receiptiq.v1.ReceiptR\areceipt\x12/\n" +
	"\x06values\x18\x02 \x03(\v2\x17.receiptiq.v1.DataValueR\x06values2\x80\x05\n" +
	"\x0eProjectService\x12X\n" +
	"\rCreateProject\x12\".receiptiq.v1.CreateProjectRequest\x1a#.receiptiq.v1.CreateProjectResponse\x12O\n" +
	"\n" +
	"GetProject\x12\x1f.receiptiq.v1.GetProjectRequest\x1a .receiptiq.v1.GetProjectResponse\x12U\n" +
	"\fListProjects\x12!.receiptiq.v1.ListProjectsRequest\x1a\".receiptiq.v1.ListProjectsResponse\x12X\n" +
	"\rDeleteProject\x12\".receiptiq.v1.DeleteProjectRequest\x1a#.receiptiq.v1.DeleteProjectResponse\x12[\n" +
	"\x0eProcessProject\x12#.receiptiq.v1.ProcessProjectRequest\x1a$.receiptiq.v1.ProcessProjectResponse\x12[\n" +
	"\x0eGetProjectData\x12#.receiptiq.v1.GetProjectDataRequest\x1a$.receiptiq.v1.GetProjectDataResponse\x12X\n" +
	"\rExportProject\x12\".receiptiq.v1.ExportProjectRequest\x1a#.receiptiq.v1.ExportProjectResponse2\xdb\x02\n" +
	"\fFieldService\x12R\n" +
	"\vCreateField\x12 .receiptiq.v1.CreateFieldRequest\x1a!.receiptiq.v1.CreateFieldResponse\x12R\n" +
	"\vUpdateField\x12 .receiptiq.v1.UpdateFieldRequest\x1a!.receiptiq.v1.UpdateFieldResponse\x12R\n" +
	"\vDeleteField\x12 .receiptiq.v1.DeleteFieldRequest\x1a!.receiptiq.v1.DeleteFieldResponse\x12O\n" +
	"\n" +
	"ListFields\x12\x1f.receiptiq.v1.ListFieldsRequest\x1a .receiptiq.v1.ListFieldsResponse2\xb5\x04\n" +
	"\x0eReceiptService\x12X\n" +
	"\rUploadReceipt\x12\".receiptiq.v1.UploadReceiptRequest\x1a#.receiptiq.v1.UploadReceiptResponse\x12O\n" +
	"\n" +
	"GetReceipt\x12\x1f.receiptiq.v1.GetReceiptRequest\x1a .receiptiq.v1.GetReceiptResponse\x12U\n" +
	"\fListReceipts\x12!.receiptiq.v1.ListReceiptsRequest\x1a\".receiptiq.v1.ListReceiptsResponse\x12X\n" +
	"\rDeleteReceipt\x12\".receiptiq.v1.DeleteReceiptRequest\x1a#.receiptiq.v1.DeleteReceiptResponse\x12j\n" +
	"\x13UpdateReceiptStatus\x12(.receiptiq.v1.UpdateReceiptStatusRequest\x1a).receiptiq.v1.UpdateReceiptStatusResponse\x12[\n" +
	"\x0eProcessReceipt\x12#.receiptiq.v1.ProcessReceiptRequest\x1a$.receiptiq.v1.ProcessReceiptResponseBCZAgithub.com/receiptiq/receiptiq/gen/proto/receiptiq/v1;receiptiqpbb\x06proto3"

var (
	file_receiptiq_v1_receiptiq_proto_rawDescOnce sync.Once
	file_receiptiq_v1_receiptiq_proto_rawDescData []byte
)

func file_receiptiq_v1_receiptiq_proto_rawDescGZIP() []byte {
	file_receiptiq_v1_receiptiq_proto_rawDescOnce.Do(func() {
		file_receiptiq_v1_receiptiq_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_receiptiq_v1_receiptiq_proto_rawDesc), len(file_receiptiq_v1_receiptiq_proto_rawDesc)))
	})
	return file_receiptiq_v1_receiptiq_proto_rawDescData
}

var file_receiptiq_v1_receiptiq_proto_msgTypes = make([]protoimpl.MessageInfo, 39)
var file_receiptiq_v1_receiptiq_proto_goTypes = []any{
	(*Project)(nil),                     // 0: receiptiq.v1.Project
	(*Field)(nil),                       // 1: receiptiq.v1.Field
	(*Receipt)(nil),                     // 2: receiptiq.v1.Receipt
	(*DataValue)(nil),                   // 3: receiptiq.v1.DataValue
	(*CreateProjectRequest)(nil),        // 4: receiptiq.v1.CreateProjectRequest
	(*CreateProjectResponse)(nil),       // 5: receiptiq.v1.CreateProjectResponse
	(*GetProjectRequest)(nil),           // 6: receiptiq.v1.GetProjectRequest
	(*GetProjectResponse)(nil),          // 7: receiptiq.v1.GetProjectResponse
	(*ListProjectsRequest)(nil),         // 8: receiptiq.v1.ListProjectsRequest
	(*ListProjectsResponse)(nil),        // 9: receiptiq.v1.ListProjectsResponse
	(*DeleteProjectRequest)(nil),        // 10: receiptiq.v1.DeleteProjectRequest
	(*DeleteProjectResponse)(nil),       // 11: receiptiq.v1.DeleteProjectResponse
	(*ProcessProjectRequest)(nil),       // 12: receiptiq.v1.ProcessProjectRequest
	(*ProcessProjectResponse)(nil),      // 13: receiptiq.v1.ProcessProjectResponse
	(*GetProjectDataRequest)(nil),       // 14: receiptiq.v1.GetProjectDataRequest
	(*ReceiptData)(nil),                 // 15: receiptiq.v1.ReceiptData
	(*GetProjectDataResponse)(nil),      // 16: receiptiq.v1.GetProjectDataResponse
	(*ExportProjectRequest)(nil),        // 17: receiptiq.v1.ExportProjectRequest
	(*ExportProjectResponse)(nil),       // 18: receiptiq.v1.ExportProjectResponse
	(*CreateFieldRequest)(nil),          // 19: receiptiq.v1.CreateFieldRequest
	(*CreateFieldResponse)(nil),         // 20: receiptiq.v1.CreateFieldResponse
	(*UpdateFieldRequest)(nil),          // 21: receiptiq.v1.UpdateFieldRequest
	(*UpdateFieldResponse)(nil),         // 22: receiptiq.v1.UpdateFieldResponse
	(*DeleteFieldRequest)(nil),          // 23: receiptiq.v1.DeleteFieldRequest
	(*DeleteFieldResponse)(nil),         // 24: receiptiq.v1.DeleteFieldResponse
	(*ListFieldsRequest)(nil),           // 25: receiptiq.v1.ListFieldsRequest
	(*ListFieldsResponse)(nil),          // 26: receiptiq.v1.ListFieldsResponse
	(*UploadReceiptRequest)(nil),        // 27: receiptiq.v1.UploadReceiptRequest
	(*UploadReceiptResponse)(nil),       // 28: receiptiq.v1.UploadReceiptResponse
	(*GetReceiptRequest)(nil),           // 29: receiptiq.v1.GetReceiptRequest
	(*GetReceiptResponse)(nil),          // 30: receiptiq.v1.GetReceiptResponse
	(*ListReceiptsRequest)(nil),         // 31: receiptiq.v1.ListReceiptsRequest
	(*ListReceiptsResponse)(nil),        // 32: receiptiq.v1.ListReceiptsResponse
	(*DeleteReceiptRequest)(nil),        // 33: receiptiq.v1.DeleteReceiptRequest
	(*DeleteReceiptResponse)(nil),       // 34: receiptiq.v1.DeleteReceiptResponse
	(*UpdateReceiptStatusRequest)(nil),  // 35: receiptiq.v1.UpdateReceiptStatusRequest
	(*UpdateReceiptStatusResponse)(nil), // 36: receiptiq.v1.UpdateReceiptStatusResponse
	(*ProcessReceiptRequest)(nil),       // 37: receiptiq.v1.ProcessReceiptRequest
	(*ProcessReceiptResponse)(nil),      // 38: receiptiq.v1.ProcessReceiptResponse
}
var file_receiptiq_v1_receiptiq_proto_depIdxs = []int32{
	1,  // 0: receiptiq.v1.Field.children:type_name -> receiptiq.v1.Field
	0,  // 1: receiptiq.v1.CreateProjectResponse.project:type_name -> receiptiq.v1.Project
	0,  // 2: receiptiq.v1.GetProjectResponse.project:type_name -> receiptiq.v1.Project
	0,  // 3: receiptiq.v1.ListProjectsResponse.projects:type_name -> receiptiq.v1.Project
	2,  // 4: receiptiq.v1.ReceiptData.receipt:type_name -> receiptiq.v1.Receipt
	3,  // 5: receiptiq.v1.ReceiptData.values:type_name -> receiptiq.v1.DataValue
	15, // 6: receiptiq.v1.GetProjectDataResponse.receipts:type_name -> receiptiq.v1.ReceiptData
	1,  // 7: receiptiq.v1.CreateFieldResponse.field:type_name -> receiptiq.v1.Field
	1,  // 8: receiptiq.v1.UpdateFieldResponse.field:type_name -> receiptiq.v1.Field
	1,  // 9: receiptiq.v1.ListFieldsResponse.fields:type_name -> receiptiq.v1.Field
	2,  // 10: receiptiq.v1.UploadReceiptResponse.receipt:type_name -> receiptiq.v1.Receipt
	2,  // 11: receiptiq.v1.GetReceiptResponse.receipt:type_name -> receiptiq.v1.Receipt
	3,  // 12: receiptiq.v1.GetReceiptResponse.values:type_name -> receiptiq.v1.DataValue
	2,  // 13: receiptiq.v1.ListReceiptsResponse.receipts:type_name -> receiptiq.v1.Receipt
	2,  // 14: receiptiq.v1.UpdateReceiptStatusResponse.receipt:type_name -> receiptiq.v1.Receipt
	2,  // 15: receiptiq.v1.ProcessReceiptResponse.receipt:type_name -> receiptiq.v1.Receipt
	3,  // 16: receiptiq.v1.ProcessReceiptResponse.values:type_name -> receiptiq.v1.DataValue
	4,  // 17: receiptiq.v1.ProjectService.CreateProject:input_type -> receiptiq.v1.CreateProjectRequest
	6,  // 18: receiptiq.v1.ProjectService.GetProject:input_type -> receiptiq.v1.GetProjectRequest
	8,  // 19: receiptiq.v1.ProjectService.ListProjects:input_type -> receiptiq.v1.ListProjectsRequest
	10, // 20: receiptiq.v1.ProjectService.DeleteProject:input_type -> receiptiq.v1.DeleteProjectRequest
	12, // 21: receiptiq.v1.ProjectService.ProcessProject:input_type -> receiptiq.v1.ProcessProjectRequest
	14, // 22: receiptiq.v1.ProjectService.GetProjectData:input_type -> receiptiq.v1.GetProjectDataRequest
	17, // 23: receiptiq.v1.ProjectService.ExportProject:input_type -> receiptiq.v1.ExportProjectRequest
	19, // 24: receiptiq.v1.FieldService.CreateField:input_type -> receiptiq.v1.CreateFieldRequest
	21, // 25: receiptiq.v1.FieldService.UpdateField:input_type -> receiptiq.v1.UpdateFieldRequest
	23, // 26: receiptiq.v1.FieldService.DeleteField:input_type -> receiptiq.v1.DeleteFieldRequest
	25, // 27: receiptiq.v1.FieldService.ListFields:input_type -> receiptiq.v1.ListFieldsRequest
	27, // 28: receiptiq.v1.ReceiptService.UploadReceipt:input_type -> receiptiq.v1.UploadReceiptRequest
	29, // 29: receiptiq.v1.ReceiptService.GetReceipt:input_type -> receiptiq.v1.GetReceiptRequest
	31, // 30: receiptiq.v1.ReceiptService.ListReceipts:input_type -> receiptiq.v1.ListReceiptsRequest
	33, // 31: receiptiq.v1.ReceiptService.DeleteReceipt:input_type -> receiptiq.v1.DeleteReceiptRequest
	35, // 32: receiptiq.v1.ReceiptService.UpdateReceiptStatus:input_type -> receiptiq.v1.UpdateReceiptStatusRequest
	37, // 33: receiptiq.v1.ReceiptService.ProcessReceipt:input_type -> receiptiq.v1.ProcessReceiptRequest
	5,  // 34: receiptiq.v1.ProjectService.CreateProject:output_type -> receiptiq.v1.CreateProjectResponse
	7,  // 35: receiptiq.v1.ProjectService.GetProject:output_type -> receiptiq.v1.GetProjectResponse
	9,  // 36: receiptiq.v1.ProjectService.ListProjects:output_type -> receiptiq.v1.ListProjectsResponse
	11, // 37: receiptiq.v1.ProjectService.DeleteProject:output_type -> receiptiq.v1.DeleteProjectResponse
	13, // 38: receiptiq.v1.ProjectService.ProcessProject:output_type -> receiptiq.v1.ProcessProjectResponse
	16, // 39: receiptiq.v1.ProjectService.GetProjectData:output_type -> receiptiq.v1.GetProjectDataResponse
	18, // 40: receiptiq.v1.ProjectService.ExportProject:output_type -> receiptiq.v1.ExportProjectResponse
	20, // 41: receiptiq.v1.FieldService.CreateField:output_type -> receiptiq.v1.CreateFieldResponse
	22, // 42: receiptiq.v1.FieldService.UpdateField:output_type -> receiptiq.v1.UpdateFieldResponse
	24, // 43: receiptiq.v1.FieldService.DeleteField:output_type -> receiptiq.v1.DeleteFieldResponse
	26, // 44: receiptiq.v1.FieldService.ListFields:output_type -> receiptiq.v1.ListFieldsResponse
	28, // 45: receiptiq.v1.ReceiptService.UploadReceipt:output_type -> receiptiq.v1.UploadReceiptResponse
	30, // 46: receiptiq.v1.ReceiptService.GetReceipt:output_type -> receiptiq.v1.GetReceiptResponse
	32, // 47: receiptiq.v1.ReceiptService.ListReceipts:output_type -> receiptiq.v1.ListReceiptsResponse
	34, // 48: receiptiq.v1.ReceiptService.DeleteReceipt:output_type -> receiptiq.v1.DeleteReceiptResponse
	36, // 49: receiptiq.v1.ReceiptService.UpdateReceiptStatus:output_type -> receiptiq.v1.UpdateReceiptStatusResponse
	38, // 50: receiptiq.v1.ReceiptService.ProcessReceipt:output_type -> receiptiq.v1.ProcessReceiptResponse
	34, // [34:51] is the sub-list for method output_type
	17, // [17:34] is the sub-list for method input_type
	17, // [17:17] is the sub-list for extension type_name
	17, // [17:17] is the sub-list for extension extendee
	0,  // [0:17] is the sub-list for field type_name
}

func init() { file_receiptiq_v1_receiptiq_proto_init() }
func file_receiptiq_v1_receiptiq_proto_init() {
	if File_receiptiq_v1_receiptiq_proto != nil {
		return
	}
	file_receiptiq_v1_receiptiq_proto_msgTypes[21].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_receiptiq_v1_receiptiq_proto_rawDesc), len(file_receiptiq_v1_receiptiq_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   39,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_receiptiq_v1_receiptiq_proto_goTypes,
		DependencyIndexes: file_receiptiq_v1_receiptiq_proto_depIdxs,
		MessageInfos:      file_receiptiq_v1_receiptiq_proto_msgTypes,
	}.Build()
	File_receiptiq_v1_receiptiq_proto = out.File
	file_receiptiq_v1_receiptiq_proto_goTypes = nil
	file_receiptiq_v1_receiptiq_proto_depIdxs = nil
}
