package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"konselingku_backend/internals/constants"
	"konselingku_backend/internals/features/counseling/sessions/model"
)

// Status approved/rejected bersifat final: sesi yang sudah diputuskan
// tidak bisa diputuskan ulang.

func loadPending(tx *gorm.DB, sessionID uuid.UUID) (*model.SessionModel, error) {
	var sess model.SessionModel
	if err := tx.First(&sess, "session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	if sess.SessionApprovalStatus != constants.ApprovalPending {
		return nil, fiber.NewError(fiber.StatusConflict,
			"Sesi sudah "+statusLabel(sess.SessionApprovalStatus)+", tidak bisa diputuskan ulang")
	}
	return &sess, nil
}

func statusLabel(status string) string {
	switch status {
	case constants.ApprovalApproved:
		return "disetujui"
	case constants.ApprovalRejected:
		return "ditolak"
	default:
		return status
	}
}

// ApproveSession menyetujui sesi pending. Tanggal dan jam sesi tidak
// pernah disentuh di sini.
func ApproveSession(tx *gorm.DB, sessionID, approverID uuid.UUID) (*model.SessionModel, error) {
	sess, err := loadPending(tx, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]any{
		"session_approval_status": constants.ApprovalApproved,
		"session_approved_by":     approverID,
		"session_approved_at":     now,
	}
	if err := tx.Model(&model.SessionModel{}).
		Where("session_id = ? AND session_approval_status = ?", sessionID, constants.ApprovalPending).
		Updates(updates).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyetujui sesi")
	}

	sess.SessionApprovalStatus = constants.ApprovalApproved
	sess.SessionApprovedBy = &approverID
	sess.SessionApprovedAt = &now
	return sess, nil
}

// RejectSession menolak sesi pending dengan alasan wajib.
func RejectSession(tx *gorm.DB, sessionID, approverID uuid.UUID, reason string) (*model.SessionModel, error) {
	if reason == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Alasan penolakan wajib diisi")
	}

	sess, err := loadPending(tx, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]any{
		"session_approval_status":  constants.ApprovalRejected,
		"session_approved_by":      approverID,
		"session_approved_at":      now,
		"session_rejection_reason": reason,
	}
	if err := tx.Model(&model.SessionModel{}).
		Where("session_id = ? AND session_approval_status = ?", sessionID, constants.ApprovalPending).
		Updates(updates).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menolak sesi")
	}

	sess.SessionApprovalStatus = constants.ApprovalRejected
	sess.SessionApprovedBy = &approverID
	sess.SessionApprovedAt = &now
	sess.SessionRejectionReason = &reason
	return sess, nil
}
