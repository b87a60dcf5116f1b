package service

import (
	"database/sql"

	"go-stocktrack/internal/apperr"
	"go-stocktrack/internal/ws"
	"go-stocktrack/pkg/validator"

	"gorm.io/gorm"
)

// TxManager runs a function inside a database transaction. *gorm.DB
// satisfies it directly.
type TxManager interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// StockPublisher pushes stock events to connected clients. *ws.Hub satisfies
// it.
type StockPublisher interface {
	Publish(event ws.StockEvent)
}

// validateStruct runs tag validation and wraps failures in a domain error.
func validateStruct(data interface{}) error {
	errs := validator.ValidateStruct(data)
	if len(errs) == 0 {
		return nil
	}
	details := make([]apperr.ValidationDetail, 0, len(errs))
	for _, e := range errs {
		details = append(details, apperr.ValidationDetail{
			Field:   e.FailedField,
			Message: "failed on tag '" + e.Tag + "'",
		})
	}
	return apperr.NewValidationError("validation failed: field '"+errs[0].FailedField+"' failed on tag '"+errs[0].Tag+"'", details...)
}
