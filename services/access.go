package services

import (
	"context"
	"errors"
	"fmt"

	"menuboard/config"
	"menuboard/db"

	"github.com/jackc/pgx/v5"
)

const (
	AccessStatusPending  = "pending"
	AccessStatusApproved = "approved"
	AccessStatusRejected = "rejected"
)

type AccessRequest struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	FullName     string  `json:"fullName"`
	Note         string  `json:"note"`
	Status       string  `json:"status"`
	ReviewedBy   *string `json:"reviewedBy,omitempty"`
	ReviewedAt   *string `json:"reviewedAt,omitempty"`
	RejectReason *string `json:"rejectReason,omitempty"`
}

// CreateAccessRequest files a pending request for the user. Returns an error
// if they already have a pending or approved one; the guard lives in the
// insert itself so concurrent submissions cannot slip through.
func CreateAccessRequest(ctx context.Context, userID, fullName, note string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("user id is required")
	}
	var id string
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO access_requests (user_id, full_name, note, status)
		SELECT $1, $2, $3, $4
		WHERE NOT EXISTS (
			SELECT 1 FROM access_requests r
			WHERE r.user_id = $1 AND (r.status = 'pending' OR r.status = 'approved')
		)
		RETURNING id::text`,
		userID, fullName, note, AccessStatusPending,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("you already have a pending or approved request")
		}
		return "", err
	}
	return id, nil
}

// GetAccessStatus returns the latest request status for the user, or "" if
// they never filed one.
func GetAccessStatus(ctx context.Context, userID string) (string, error) {
	var status string
	err := db.Pool.QueryRow(ctx, `
		SELECT status FROM access_requests WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`,
		userID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return status, nil
}

// ListPendingAccessRequests returns up to limit pending requests, newest
// first. Admin-only; the allowlist is consulted here, not in middleware.
func ListPendingAccessRequests(ctx context.Context, admin config.AdminConfig, reviewerID string, limit int) ([]AccessRequest, error) {
	if !admin.IsAdmin(reviewerID) {
		return nil, ErrNotAdmin
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Pool.Query(ctx, `
		SELECT id::text, user_id, COALESCE(full_name, ''), COALESCE(note, ''), status,
		       reviewed_by, reviewed_at::text, reject_reason
		FROM access_requests WHERE status = $1
		ORDER BY created_at DESC LIMIT $2`,
		AccessStatusPending, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []AccessRequest
	for rows.Next() {
		var r AccessRequest
		if err := rows.Scan(&r.ID, &r.UserID, &r.FullName, &r.Note, &r.Status,
			&r.ReviewedBy, &r.ReviewedAt, &r.RejectReason); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, rows.Err()
}

// ApproveAccessRequest marks a pending request approved.
func ApproveAccessRequest(ctx context.Context, admin config.AdminConfig, reviewerID, requestID string) error {
	if !admin.IsAdmin(reviewerID) {
		return ErrNotAdmin
	}
	res, err := db.Pool.Exec(ctx, `
		UPDATE access_requests SET status = $1, reviewed_by = $2, reviewed_at = now(), updated_at = now()
		WHERE id = $3 AND status = $4`,
		AccessStatusApproved, reviewerID, requestID, AccessStatusPending,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("request not found or not pending")
	}
	return nil
}

// RejectAccessRequest marks a pending request rejected with a reason, which
// lets the user file again later.
func RejectAccessRequest(ctx context.Context, admin config.AdminConfig, reviewerID, requestID, reason string) error {
	if !admin.IsAdmin(reviewerID) {
		return ErrNotAdmin
	}
	res, err := db.Pool.Exec(ctx, `
		UPDATE access_requests SET status = $1, reviewed_by = $2, reviewed_at = now(), reject_reason = $3, updated_at = now()
		WHERE id = $4 AND status = $5`,
		AccessStatusRejected, reviewerID, reason, requestID, AccessStatusPending,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("request not found or not pending")
	}
	return nil
}
