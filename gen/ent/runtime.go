// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/receiptiq/receiptiq/db/ent/schema"
	"github.com/receiptiq/receiptiq/gen/ent/datavalue"
	entfield "github.com/receiptiq/receiptiq/gen/ent/field"
	"github.com/receiptiq/receiptiq/gen/ent/project"
	"github.com/receiptiq/receiptiq/gen/ent/receipt"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	datavalueFields := schema.DataValue{}.Fields()
	_ = datavalueFields
	// datavalueDescRow is the schema descriptor for row field.
	datavalueDescRow := datavalueFields[3].Descriptor()
	// datavalue.DefaultRow holds the default value on creation for the row field.
	datavalue.DefaultRow = datavalueDescRow.Default.(int)
	// datavalue.RowValidator is a validator for the "row" field. It is called by the builders before save.
	datavalue.RowValidator = datavalueDescRow.Validators[0].(func(int) error)
	// datavalueDescValue is the schema descriptor for value field.
	datavalueDescValue := datavalueFields[4].Descriptor()
	// datavalue.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	datavalue.ValueValidator = datavalueDescValue.Validators[0].(func(string) error)
	// datavalueDescX is the schema descriptor for x field.
	datavalueDescX := datavalueFields[5].Descriptor()
	// datavalue.DefaultX holds the default value on creation for the x field.
	datavalue.DefaultX = datavalueDescX.Default.(float64)
	// datavalueDescY is the schema descriptor for y field.
	datavalueDescY := datavalueFields[6].Descriptor()
	// datavalue.DefaultY holds the default value on creation for the y field.
	datavalue.DefaultY = datavalueDescY.Default.(float64)
	// datavalueDescWidth is the schema descriptor for width field.
	datavalueDescWidth := datavalueFields[7].Descriptor()
	// datavalue.DefaultWidth holds the default value on creation for the width field.
	datavalue.DefaultWidth = datavalueDescWidth.Default.(float64)
	// datavalueDescHeight is the schema descriptor for height field.
	datavalueDescHeight := datavalueFields[8].Descriptor()
	// datavalue.DefaultHeight holds the default value on creation for the height field.
	datavalue.DefaultHeight = datavalueDescHeight.Default.(float64)
	// datavalueDescCreatedAt is the schema descriptor for created_at field.
	datavalueDescCreatedAt := datavalueFields[9].Descriptor()
	// datavalue.DefaultCreatedAt holds the default value on creation for the created_at field.
	datavalue.DefaultCreatedAt = datavalueDescCreatedAt.Default.(func() time.Time)
	// datavalueDescUpdatedAt is the schema descriptor for updated_at field.
	datavalueDescUpdatedAt := datavalueFields[10].Descriptor()
	// datavalue.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	datavalue.DefaultUpdatedAt = datavalueDescUpdatedAt.Default.(func() time.Time)
	// datavalue.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	datavalue.UpdateDefaultUpdatedAt = datavalueDescUpdatedAt.UpdateDefault.(func() time.Time)
	// datavalueDescID is the schema descriptor for id field.
	datavalueDescID := datavalueFields[0].Descriptor()
	// datavalue.DefaultID holds the default value on creation for the id field.
	datavalue.DefaultID = datavalueDescID.Default.(func() uuid.UUID)
	entfieldFields := schema.Field{}.Fields()
	_ = entfieldFields
	// entfieldDescName is the schema descriptor for name field.
	entfieldDescName := entfieldFields[3].Descriptor()
	// entfield.NameValidator is a validator for the "name" field. It is called by the builders before save.
	entfield.NameValidator = func() func(string) error {
		validators := entfieldDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// entfieldDescType is the schema descriptor for type field.
	entfieldDescType := entfieldFields[4].Descriptor()
	// entfield.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	entfield.TypeValidator = func() func(string) error {
		validators := entfieldDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// entfieldDescDescription is the schema descriptor for description field.
	entfieldDescDescription := entfieldFields[5].Descriptor()
	// entfield.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	entfield.DescriptionValidator = entfieldDescDescription.Validators[0].(func(string) error)
	// entfieldDescCreatedAt is the schema descriptor for created_at field.
	entfieldDescCreatedAt := entfieldFields[6].Descriptor()
	// entfield.DefaultCreatedAt holds the default value on creation for the created_at field.
	entfield.DefaultCreatedAt = entfieldDescCreatedAt.Default.(func() time.Time)
	// entfieldDescUpdatedAt is the schema descriptor for updated_at field.
	entfieldDescUpdatedAt := entfieldFields[7].Descriptor()
	// entfield.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	entfield.DefaultUpdatedAt = entfieldDescUpdatedAt.Default.(func() time.Time)
	// entfield.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	entfield.UpdateDefaultUpdatedAt = entfieldDescUpdatedAt.UpdateDefault.(func() time.Time)
	// entfieldDescID is the schema descriptor for id field.
	entfieldDescID := entfieldFields[0].Descriptor()
	// entfield.DefaultID holds the default value on creation for the id field.
	entfield.DefaultID = entfieldDescID.Default.(func() uuid.UUID)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[2].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = func() func(string) error {
		validators := projectDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// projectDescDescription is the schema descriptor for description field.
	projectDescDescription := projectFields[3].Descriptor()
	// project.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	project.DescriptionValidator = projectDescDescription.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[5].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescID is the schema descriptor for id field.
	projectDescID := projectFields[0].Descriptor()
	// project.DefaultID holds the default value on creation for the id field.
	project.DefaultID = projectDescID.Default.(func() uuid.UUID)
	receiptFields := schema.Receipt{}.Fields()
	_ = receiptFields
	// receiptDescFilePath is the schema descriptor for file_path field.
	receiptDescFilePath := receiptFields[2].Descriptor()
	// receipt.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	receipt.FilePathValidator = func() func(string) error {
		validators := receiptDescFilePath.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_path string) error {
			for _, fn := range fns {
				if err := fn(file_path); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// receiptDescFileName is the schema descriptor for file_name field.
	receiptDescFileName := receiptFields[3].Descriptor()
	// receipt.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	receipt.FileNameValidator = func() func(string) error {
		validators := receiptDescFileName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_name string) error {
			for _, fn := range fns {
				if err := fn(file_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// receiptDescMimeType is the schema descriptor for mime_type field.
	receiptDescMimeType := receiptFields[4].Descriptor()
	// receipt.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	receipt.MimeTypeValidator = func() func(string) error {
		validators := receiptDescMimeType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(mime_type string) error {
			for _, fn := range fns {
				if err := fn(mime_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// receiptDescStatus is the schema descriptor for status field.
	receiptDescStatus := receiptFields[5].Descriptor()
	// receipt.DefaultStatus holds the default value on creation for the status field.
	receipt.DefaultStatus = receiptDescStatus.Default.(string)
	// receipt.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	receipt.StatusValidator = receiptDescStatus.Validators[0].(func(string) error)
	// receiptDescErrorMessage is the schema descriptor for error_message field.
	receiptDescErrorMessage := receiptFields[6].Descriptor()
	// receipt.ErrorMessageValidator is a validator for the "error_message" field. It is called by the builders before save.
	receipt.ErrorMessageValidator = receiptDescErrorMessage.Validators[0].(func(string) error)
	// receiptDescCreatedAt is the schema descriptor for created_at field.
	receiptDescCreatedAt := receiptFields[7].Descriptor()
	// receipt.DefaultCreatedAt holds the default value on creation for the created_at field.
	receipt.DefaultCreatedAt = receiptDescCreatedAt.Default.(func() time.Time)
	// receiptDescUpdatedAt is the schema descriptor for updated_at field.
	receiptDescUpdatedAt := receiptFields[8].Descriptor()
	// receipt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	receipt.DefaultUpdatedAt = receiptDescUpdatedAt.Default.(func() time.Time)
	// receipt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	receipt.UpdateDefaultUpdatedAt = receiptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// receiptDescID is the schema descriptor for id field.
	receiptDescID := receiptFields[0].Descriptor()
	// receipt.DefaultID holds the default value on creation for the id field.
	receipt.DefaultID = receiptDescID.Default.(func() uuid.UUID)
}
