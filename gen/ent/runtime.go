// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/prasetyadi/contracts-tracker/db/ent/schema"
	"github.com/prasetyadi/contracts-tracker/gen/ent/contract"
	"github.com/prasetyadi/contracts-tracker/gen/ent/contractfile"
	"github.com/prasetyadi/contracts-tracker/gen/ent/extractjob"
	"github.com/prasetyadi/contracts-tracker/gen/ent/terminpayment"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contractFields := schema.Contract{}.Fields()
	_ = contractFields
	// contractDescCustomerName is the schema descriptor for customer_name field.
	contractDescCustomerName := contractFields[1].Descriptor()
	// contract.CustomerNameValidator is a validator for the "customer_name" field. It is called by the builders before save.
	contract.CustomerNameValidator = contractDescCustomerName.Validators[0].(func(string) error)
	// contractDescConnectivityCount is the schema descriptor for connectivity_count field.
	contractDescConnectivityCount := contractFields[6].Descriptor()
	// contract.DefaultConnectivityCount holds the default value on creation for the connectivity_count field.
	contract.DefaultConnectivityCount = contractDescConnectivityCount.Default.(int)
	// contract.ConnectivityCountValidator is a validator for the "connectivity_count" field. It is called by the builders before save.
	contract.ConnectivityCountValidator = contractDescConnectivityCount.Validators[0].(func(int) error)
	// contractDescNonConnectivityCount is the schema descriptor for non_connectivity_count field.
	contractDescNonConnectivityCount := contractFields[7].Descriptor()
	// contract.DefaultNonConnectivityCount holds the default value on creation for the non_connectivity_count field.
	contract.DefaultNonConnectivityCount = contractDescNonConnectivityCount.Default.(int)
	// contract.NonConnectivityCountValidator is a validator for the "non_connectivity_count" field. It is called by the builders before save.
	contract.NonConnectivityCountValidator = contractDescNonConnectivityCount.Validators[0].(func(int) error)
	// contractDescBundlingCount is the schema descriptor for bundling_count field.
	contractDescBundlingCount := contractFields[8].Descriptor()
	// contract.DefaultBundlingCount holds the default value on creation for the bundling_count field.
	contract.DefaultBundlingCount = contractDescBundlingCount.Default.(int)
	// contract.BundlingCountValidator is a validator for the "bundling_count" field. It is called by the builders before save.
	contract.BundlingCountValidator = contractDescBundlingCount.Validators[0].(func(int) error)
	// contractDescInstallationCost is the schema descriptor for installation_cost field.
	contractDescInstallationCost := contractFields[9].Descriptor()
	// contract.DefaultInstallationCost holds the default value on creation for the installation_cost field.
	contract.DefaultInstallationCost = contractDescInstallationCost.Default.(string)
	// contractDescSubscriptionCost is the schema descriptor for subscription_cost field.
	contractDescSubscriptionCost := contractFields[10].Descriptor()
	// contract.DefaultSubscriptionCost holds the default value on creation for the subscription_cost field.
	contract.DefaultSubscriptionCost = contractDescSubscriptionCost.Default.(string)
	// contractDescPaymentMethod is the schema descriptor for payment_method field.
	contractDescPaymentMethod := contractFields[11].Descriptor()
	// contract.PaymentMethodValidator is a validator for the "payment_method" field. It is called by the builders before save.
	contract.PaymentMethodValidator = func() func(string) error {
		validators := contractDescPaymentMethod.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(payment_method string) error {
			for _, fn := range fns {
				if err := fn(payment_method); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contractDescPaymentConfidence is the schema descriptor for payment_confidence field.
	contractDescPaymentConfidence := contractFields[13].Descriptor()
	// contract.PaymentConfidenceValidator is a validator for the "payment_confidence" field. It is called by the builders before save.
	contract.PaymentConfidenceValidator = func() func(string) error {
		validators := contractDescPaymentConfidence.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(payment_confidence string) error {
			for _, fn := range fns {
				if err := fn(payment_confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contractDescCreatedAt is the schema descriptor for created_at field.
	contractDescCreatedAt := contractFields[22].Descriptor()
	// contract.DefaultCreatedAt holds the default value on creation for the created_at field.
	contract.DefaultCreatedAt = contractDescCreatedAt.Default.(func() time.Time)
	// contractDescUpdatedAt is the schema descriptor for updated_at field.
	contractDescUpdatedAt := contractFields[23].Descriptor()
	// contract.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contract.DefaultUpdatedAt = contractDescUpdatedAt.Default.(func() time.Time)
	// contract.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contract.UpdateDefaultUpdatedAt = contractDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contractDescID is the schema descriptor for id field.
	contractDescID := contractFields[0].Descriptor()
	// contract.DefaultID holds the default value on creation for the id field.
	contract.DefaultID = contractDescID.Default.(func() uuid.UUID)
	contractfileFields := schema.ContractFile{}.Fields()
	_ = contractfileFields
	// contractfileDescFilename is the schema descriptor for filename field.
	contractfileDescFilename := contractfileFields[1].Descriptor()
	// contractfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	contractfile.FilenameValidator = contractfileDescFilename.Validators[0].(func(string) error)
	// contractfileDescFilePath is the schema descriptor for file_path field.
	contractfileDescFilePath := contractfileFields[2].Descriptor()
	// contractfile.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	contractfile.FilePathValidator = contractfileDescFilePath.Validators[0].(func(string) error)
	// contractfileDescPageCount is the schema descriptor for page_count field.
	contractfileDescPageCount := contractfileFields[3].Descriptor()
	// contractfile.DefaultPageCount holds the default value on creation for the page_count field.
	contractfile.DefaultPageCount = contractfileDescPageCount.Default.(int)
	// contractfile.PageCountValidator is a validator for the "page_count" field. It is called by the builders before save.
	contractfile.PageCountValidator = contractfileDescPageCount.Validators[0].(func(int) error)
	// contractfileDescUploadedAt is the schema descriptor for uploaded_at field.
	contractfileDescUploadedAt := contractfileFields[4].Descriptor()
	// contractfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	contractfile.DefaultUploadedAt = contractfileDescUploadedAt.Default.(func() time.Time)
	// contractfileDescID is the schema descriptor for id field.
	contractfileDescID := contractfileFields[0].Descriptor()
	// contractfile.DefaultID holds the default value on creation for the id field.
	contractfile.DefaultID = contractfileDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[3].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[4].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[6].Descriptor()
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = extractjobDescStatus.Validators[0].(func(string) error)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[8].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	terminpaymentFields := schema.TerminPayment{}.Fields()
	_ = terminpaymentFields
	// terminpaymentDescSequence is the schema descriptor for sequence field.
	terminpaymentDescSequence := terminpaymentFields[2].Descriptor()
	// terminpayment.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	terminpayment.SequenceValidator = terminpaymentDescSequence.Validators[0].(func(int) error)
	// terminpaymentDescSynthesized is the schema descriptor for synthesized field.
	terminpaymentDescSynthesized := terminpaymentFields[6].Descriptor()
	// terminpayment.DefaultSynthesized holds the default value on creation for the synthesized field.
	terminpayment.DefaultSynthesized = terminpaymentDescSynthesized.Default.(bool)
	// terminpaymentDescID is the schema descriptor for id field.
	terminpaymentDescID := terminpaymentFields[0].Descriptor()
	// terminpayment.DefaultID holds the default value on creation for the id field.
	terminpayment.DefaultID = terminpaymentDescID.Default.(func() uuid.UUID)
}
