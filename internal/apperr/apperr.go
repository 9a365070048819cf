package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// Kind classifies a failure so the transport layer can map it to a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUpstreamUnavailable
	KindGenerationParse
	KindQuotaExceeded
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	case KindGenerationParse:
		return "generation_parse"
	case KindQuotaExceeded:
		return "quota_exceeded"
	default:
		return "internal"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s", e.Msg, e.Err)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newErr(kind Kind, err error, format string, args ...any) error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func Validation(format string, args ...any) error {
	return newErr(KindValidation, nil, format, args...)
}

// ValidationFrom wraps an error (usually a multierr combination) as a validation failure.
func ValidationFrom(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindValidation, Err: err}
}

func NotFound(err error, format string, args ...any) error {
	return newErr(KindNotFound, err, format, args...)
}

func Conflict(err error, format string, args ...any) error {
	return newErr(KindConflict, err, format, args...)
}

func Upstream(err error, format string, args ...any) error {
	return newErr(KindUpstreamUnavailable, err, format, args...)
}

func GenerationParse(err error, format string, args ...any) error {
	return newErr(KindGenerationParse, err, format, args...)
}

func QuotaExceeded(format string, args ...any) error {
	return newErr(KindQuotaExceeded, nil, format, args...)
}

// KindOf returns the kind of the first *Error found in the chain. A unique key violation
// that no upsert absorbed is a conflict; anything else is internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	if isUniqueViolation(err) {
		return KindConflict
	}
	return KindInternal
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUpstreamUnavailable:
		return http.StatusServiceUnavailable
	case KindGenerationParse:
		return http.StatusBadGateway
	case KindQuotaExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is what gets sent to clients; internal errors never leak details.
func PublicMessage(err error) string {
	var appErr *Error
	switch {
	case KindOf(err) == KindInternal:
		return "internal error"
	case !errors.As(err, &appErr):
		// raw database conflict
		return "resource already exists"
	}
	return err.Error()
}
