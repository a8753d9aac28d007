package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is. Every typed error in this
// package unwraps to exactly one of these.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrVersionIsInvalid    = errors.New("version is invalid")
	ErrForbidden           = errors.New("operation is forbidden")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrDuplicateBid        = errors.New("duplicate bid")
	ErrVehicleMismatch     = errors.New("vehicle type mismatch")
	ErrShipmentNotBiddable = errors.New("shipment is not accepting bids")
	ErrStorage             = errors.New("storage failure")
	ErrGateway             = errors.New("payment gateway failure")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

// ObjectNotFoundError indicates that an entity could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return withCause(
			fmt.Sprintf("%s: param is: %s, ID is: %s", ErrObjectNotFound, e.ParamName, e.ID),
			e.Cause,
		)
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName)), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value is outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := sanitize(fmt.Sprintf(
		"%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max,
	))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName)), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates an optimistic concurrency conflict: the
// aggregate's stored version no longer matches the version it was loaded with.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, sanitize(e.ParamName)), e.Cause)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// ForbiddenError indicates a role or ownership violation by the acting user.
type ForbiddenError struct {
	ActorID string
	Reason  string
	Cause   error
}

func NewForbiddenError(actorID, reason string) *ForbiddenError {
	return &ForbiddenError{ActorID: actorID, Reason: reason}
}

func NewForbiddenErrorWithCause(actorID, reason string, cause error) *ForbiddenError {
	return &ForbiddenError{ActorID: actorID, Reason: reason, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrForbidden, sanitize(e.Reason)), e.Cause)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidTransitionError indicates a status precondition was not met for
// the requested lifecycle transition.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
	Cause  error
}

func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func NewInvalidTransitionErrorWithCause(entity, from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s cannot go from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To),
		e.Cause,
	)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// DuplicateBidError indicates a driver already holds a bid on the shipment.
type DuplicateBidError struct {
	ShipmentID string
	DriverID   string
	Cause      error
}

func NewDuplicateBidError(shipmentID, driverID string) *DuplicateBidError {
	return &DuplicateBidError{ShipmentID: shipmentID, DriverID: driverID}
}

func NewDuplicateBidErrorWithCause(shipmentID, driverID string, cause error) *DuplicateBidError {
	return &DuplicateBidError{ShipmentID: shipmentID, DriverID: driverID, Cause: cause}
}

func (e *DuplicateBidError) Error() string {
	return withCause(
		fmt.Sprintf("%s: driver %s already bid on shipment %s", ErrDuplicateBid, e.DriverID, e.ShipmentID),
		e.Cause,
	)
}

func (e *DuplicateBidError) Unwrap() error {
	return ErrDuplicateBid
}

// VehicleMismatchError indicates the driver's vehicle type does not satisfy
// the shipment's vehicle requirements.
type VehicleMismatchError struct {
	VehicleType string
	Required    []string
}

func NewVehicleMismatchError(vehicleType string, required []string) *VehicleMismatchError {
	return &VehicleMismatchError{VehicleType: vehicleType, Required: required}
}

func (e *VehicleMismatchError) Error() string {
	return fmt.Sprintf(
		"%s: %s does not match required types [%s]",
		ErrVehicleMismatch, e.VehicleType, strings.Join(e.Required, ", "),
	)
}

func (e *VehicleMismatchError) Unwrap() error {
	return ErrVehicleMismatch
}

// ShipmentNotBiddableError indicates a bid was submitted against a shipment
// that is not in bidding status.
type ShipmentNotBiddableError struct {
	ShipmentID string
	Status     string
}

func NewShipmentNotBiddableError(shipmentID, status string) *ShipmentNotBiddableError {
	return &ShipmentNotBiddableError{ShipmentID: shipmentID, Status: status}
}

func (e *ShipmentNotBiddableError) Error() string {
	return fmt.Sprintf("%s: shipment %s is in %s status", ErrShipmentNotBiddable, e.ShipmentID, e.Status)
}

func (e *ShipmentNotBiddableError) Unwrap() error {
	return ErrShipmentNotBiddable
}

// StorageError indicates a failure in an external storage collaborator
// (database or image host). Not retried by the core.
type StorageError struct {
	Operation string
	Cause     error
}

func NewStorageError(operation string, cause error) *StorageError {
	return &StorageError{Operation: operation, Cause: cause}
}

func (e *StorageError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrStorage, sanitize(e.Operation)), e.Cause)
}

func (e *StorageError) Unwrap() error {
	return ErrStorage
}

// GatewayError indicates a failure reported by the payment gateway.
type GatewayError struct {
	Method string
	Cause  error
}

func NewGatewayError(method string, cause error) *GatewayError {
	return &GatewayError{Method: method, Cause: cause}
}

func (e *GatewayError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrGateway, sanitize(e.Method)), e.Cause)
}

func (e *GatewayError) Unwrap() error {
	return ErrGateway
}
