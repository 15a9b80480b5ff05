package apperror

import "errors"

var ErrOrderNotFound = errors.New("ErrOrderNotFound")
var ErrProductNotFound = errors.New("ErrProductNotFound")
var ErrOrderIncomplete = errors.New("ErrOrderIncomplete")
var ErrTransactionMissing = errors.New("ErrTransactionMissing")

var ErrCountryNotSupported = errors.New("ErrCountryNotSupported")
var ErrAPIConfigNotValid = errors.New("ErrAPIConfigNotValid")
var ErrCaptureStatesNotConfigured = errors.New("ErrCaptureStatesNotConfigured")

var ErrInstallmentNotSelected = errors.New("InstallmentNotSelected")
var ErrInstallmentNotValid = errors.New("InstallmentNotValid")
var ErrBankAccountNotValid = errors.New("BankAccountNotValid")
var ErrPaymentMethodNotAvailable = errors.New("PaymentMethodNotAvailable")
