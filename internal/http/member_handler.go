package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"librarysvc/internal/entity"
	"librarysvc/internal/usecase"
)

type MemberHandler struct {
	repo usecase.MemberRepository
}

func NewMemberHandler(repo usecase.MemberRepository) *MemberHandler {
	return &MemberHandler{repo: repo}
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.repo.List(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	if members == nil {
		members = []entity.Member{}
	}
	writeJSON(w, http.StatusOK, members)
}

// Get looks a member up by the caller-facing member ID. The response carries
// the surrogate id, which is what the original API exposed here.
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusNotFound, "Member not found")
		return
	}

	member, err := h.repo.GetByMemberID(r.Context(), memberID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "Member not found")
			return
		}
		JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":    member.ID,
		"name":  member.Name,
		"email": member.Email,
	})
}

type addMemberReq struct {
	ID    int64  `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func (h *MemberHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addMemberReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if details := ValidateStruct(req); len(details) > 0 {
		JSONValidationError(w, details)
		return
	}

	member := &entity.Member{
		MemberID: req.ID,
		Name:     req.Name,
		Email:    req.Email,
	}
	if err := h.repo.Create(r.Context(), member); err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateEmail):
			JSONError(w, http.StatusConflict, "Email already registered")
		case errors.Is(err, usecase.ErrDuplicateID):
			JSONError(w, http.StatusConflict, "Member ID already in use")
		default:
			JSONError(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	// member_id here is the surrogate id, matching the original response.
	writeJSON(w, http.StatusCreated, map[string]any{
		"member_id": member.ID,
		"name":      member.Name,
		"email":     member.Email,
	})
}

// Update accepts either a JSON body or the form-encoded body the original
// clients send; both carry optional name and email fields.
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusNotFound, "Member not found")
		return
	}

	patch, err := decodeMemberPatch(r)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		if emailErrs := ValidateStruct(struct {
			Email string `validate:"email"`
		}{email}); len(emailErrs) > 0 {
			JSONValidationError(w, emailErrs)
			return
		}
		patch.Email = &email
	}

	member, err := h.repo.Update(r.Context(), memberID, patch)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "Member not found")
		case errors.Is(err, usecase.ErrDuplicateEmail):
			JSONError(w, http.StatusConflict, "Email already registered")
		default:
			JSONError(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"member_id": member.MemberID,
		"name":      member.Name,
		"email":     member.Email,
	})
}

func decodeMemberPatch(r *http.Request) (usecase.MemberPatch, error) {
	var patch usecase.MemberPatch

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return patch, err
		}
		if vs, ok := r.Form["name"]; ok && len(vs) > 0 {
			patch.Name = &vs[0]
		}
		if vs, ok := r.Form["email"]; ok && len(vs) > 0 {
			patch.Email = &vs[0]
		}
		return patch, nil
	}

	var req struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return patch, err
	}
	patch.Name = req.Name
	patch.Email = req.Email
	return patch, nil
}

func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		JSONError(w, http.StatusNotFound, "Member not found")
		return
	}

	if err := h.repo.Delete(r.Context(), memberID); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "Member not found")
			return
		}
		JSONError(w, http.StatusInternalServerError, "server error")
		return
	}
	JSONMessage(w, http.StatusOK, "Member deleted")
}
