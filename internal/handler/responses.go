package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/SpaceBot_Go/internal/cooldown"
	"github.com/osse101/SpaceBot_Go/internal/domain"
	"github.com/osse101/SpaceBot_Go/internal/logger"
)

// Response is the envelope every API endpoint answers with
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationErrorResponse carries per-field validation failures
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondOK sends a successful envelope
func respondOK(w http.ResponseWriter, status int, message string, data interface{}) {
	respondJSON(w, status, Response{Success: true, Message: message, Data: data})
}

// respondError sends a failed envelope
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Response{Success: false, Message: message})
}

// respondServiceError renders a service error. Expected economy outcomes become 4xx with a
// user-facing message; anything else is logged and hidden behind a generic 500.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error(opName+" failed", "error", err)
	} else {
		logger.FromContext(r.Context()).Debug(opName+" rejected", "reason", err)
	}
	respondError(w, status, message)
}

// userMessages maps domain sentinels to the text shown to chat users
var userMessages = []struct {
	err     error
	message string
}{
	{domain.ErrItemNotFound, ErrMsgItemNotFoundError},
	{domain.ErrJobNotFound, ErrMsgJobNotFoundError},
	{domain.ErrStockNotFound, ErrMsgStockNotFoundError},
	{domain.ErrTradeNotFound, ErrMsgTradeNotFoundError},
	{domain.ErrInsufficientFunds, ErrMsgNotEnoughMoneyError},
	{domain.ErrInsufficientItem, ErrMsgInsufficientItemsErr},
	{domain.ErrItemNotOwned, ErrMsgNotInInventoryError},
	{domain.ErrInsufficientShares, ErrMsgNotEnoughSharesError},
	{domain.ErrAlreadyEmployed, ErrMsgAlreadyEmployedError},
	{domain.ErrNotEmployed, ErrMsgNotEmployedError},
	{domain.ErrTradeNotPending, ErrMsgTradeClosedError},
	{domain.ErrWrongAcceptor, ErrMsgWrongAcceptorError},
	{domain.ErrNotTradeParty, ErrMsgNotTradePartyError},
	{domain.ErrNoPendingChallenge, ErrMsgNoChallengeError},
	{domain.ErrChallengeOutstanding, ErrMsgChallengeOpenError},
	{domain.ErrInvalidAmount, ErrMsgAmountPositiveError},
	{domain.ErrInvalidTradeSide, ErrMsgInvalidTradeSideError},
	{domain.ErrSelfTarget, ErrMsgSelfTargetError},
	{domain.ErrDuplicate, ErrMsgDuplicateError},
	{domain.ErrInvalidInput, ErrMsgInvalidRequestError},
}

// mapServiceErrorToUserMessage converts a service error into an HTTP status and a message
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	status := statusForKind(domain.KindOf(err))
	if status == http.StatusInternalServerError {
		return status, ErrMsgGenericServerError
	}

	// The cooldown error carries the remaining wait, which is what users want to see
	var cdErr cooldown.ErrOnCooldown
	if errors.As(err, &cdErr) {
		return status, cdErr.Error()
	}

	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return status, m.message
		}
	}
	return status, ErrMsgInvalidRequestError
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInsufficient, domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindEmployment, domain.KindInvalidState:
		return http.StatusConflict
	case domain.KindCooldown:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
