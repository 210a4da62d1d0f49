package errors

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapDBError_NilError(t *testing.T) {
	if err := MapDBError(nil); err != nil {
		t.Errorf("MapDBError(nil) = %v, want nil", err)
	}
}

func TestMapDBError_ContextErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode ErrorCode
	}{
		{name: "deadline exceeded", err: context.DeadlineExceeded, wantCode: ErrCodeTimeout},
		{name: "canceled", err: context.Canceled, wantCode: ErrCodeCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.err)
			if !IsAppError(err, tt.wantCode) {
				t.Errorf("MapDBError() code = %v, want %v", GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestMapDBError_NoRows(t *testing.T) {
	err := MapDBError(pgx.ErrNoRows)
	if !IsNotFound(err) {
		t.Errorf("MapDBError(pgx.ErrNoRows) should be NotFound, got %v", GetCode(err))
	}
}

func TestMapDBError_SchemaUnavailable(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{name: "undefined table", code: pgerrcode.UndefinedTable},
		{name: "undefined function", code: pgerrcode.UndefinedFunction},
		{name: "invalid schema name", code: pgerrcode.InvalidSchemaName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(&pgconn.PgError{Code: tt.code})
			if !IsSchemaUnavailable(err) {
				t.Errorf("MapDBError(%s) should be SchemaUnavailable, got %v", tt.code, GetCode(err))
			}
		})
	}
}

func TestMapDBError_UniqueViolation(t *testing.T) {
	tests := []struct {
		name      string
		pgErr     *pgconn.PgError
		wantField string
	}{
		{
			name: "with column name",
			pgErr: &pgconn.PgError{
				Code:       pgerrcode.UniqueViolation,
				ColumnName: "org_name",
			},
			wantField: "org_name",
		},
		{
			name: "with detail message",
			pgErr: &pgconn.PgError{
				Code:   pgerrcode.UniqueViolation,
				Detail: `Key (artist_name)=(Nova) already exists.`,
			},
			wantField: "artist_name",
		},
		{
			name:      "no metadata",
			pgErr:     &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			wantField: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.pgErr)
			if !IsConflict(err) {
				t.Fatalf("MapDBError() should be Conflict, got %v", GetCode(err))
			}
			if got := GetField(err); got != tt.wantField {
				t.Errorf("GetField() = %q, want %q", got, tt.wantField)
			}
		})
	}
}

func TestMapDBError_ConstraintViolations(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantCode ErrorCode
	}{
		{name: "foreign key", code: pgerrcode.ForeignKeyViolation, wantCode: ErrCodeValidation},
		{name: "check", code: pgerrcode.CheckViolation, wantCode: ErrCodeValidation},
		{name: "not null", code: pgerrcode.NotNullViolation, wantCode: ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(&pgconn.PgError{Code: tt.code})
			if !IsAppError(err, tt.wantCode) {
				t.Errorf("MapDBError(%s) code = %v, want %v", tt.code, GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestMapDBError_UnhandledPgError(t *testing.T) {
	err := MapDBError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	if !IsInternal(err) {
		t.Errorf("unhandled pg error should map to Internal, got %v", GetCode(err))
	}
}

func TestMapDBError_UnrecognizedError(t *testing.T) {
	plain := errors.New("network down")
	if got := MapDBError(plain); !errors.Is(got, plain) {
		t.Errorf("MapDBError(plain) = %v, want original", got)
	}
}
