package programs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/internal/workouts"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// AuditEntry is the append-only trace of one generation request.
type AuditEntry struct {
	RequestID uuid.UUID
	UserKey   string
	Params    Params
	Generated json.RawMessage
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Persist writes the program, its sessions with exercises and the audit entry in one transaction.
// Sessions get the new program id; ids are filled in place.
func (r *Repo) Persist(
	ctx context.Context,
	program *workouts.Program,
	sessions []workouts.Session,
	audit AuditEntry,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.persist")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("request.id", audit.RequestID.String()),
		attribute.Int("sessions", len(sessions)),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if err = workouts.InsertProgram(ctx, tx, program); err != nil {
		return fmt.Errorf("insert program: %w", err)
	}

	for i := range sessions {
		sessions[i].ProgramID = &program.ID
		if err = workouts.InsertSession(ctx, tx, &sessions[i]); err != nil {
			return err
		}
	}

	paramsJSON, err := json.Marshal(audit.Params)
	if err != nil {
		return fmt.Errorf("marshal audit params: %w", err)
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO program_generation_audit (request_id, user_key, program_id, params, generated)
		VALUES ($1, $2, $3, $4, $5);
	`, audit.RequestID, audit.UserKey, program.ID, paramsJSON, []byte(audit.Generated))
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	return nil
}
