package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/billing/model"
)

const headerName = "X-Idempotency-Key"

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
)

// Middleware makes tagged mutation endpoints (invoice and customer creation)
// safe to retry: the first request with a given key wins, concurrent
// duplicates are rejected, and completed responses are replayed from cache.
//
//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := hashBody(req)

	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      key,
	}

	entry, cacheErr := Keyspace.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if errors.Is(cacheErr, cache.Miss) {
			if err := markProcessing(req.Context(), cacheKey); err != nil {
				return middleware.Response{Err: err}
			}

			response := next(req)

			if response.Err != nil {
				clearEntry(req.Context(), cacheKey)
			} else {
				markCompleted(req.Context(), cacheKey, bodyHash, key, response)
			}

			return response
		}

		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	return replayEntry(req, next, entry, bodyHash, key)
}

// extractKey extracts and validates the idempotency key from headers
func extractKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = headers.Get(headerName)
	}

	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: headerName + " header is required"}
	}

	return key, nil
}

// hashBody creates a stable hash of the request body for conflict detection
func hashBody(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}

	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}

	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// replayEntry handles requests whose idempotency key was seen before
func replayEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, key string) middleware.Response {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return middleware.Response{
			Err: &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"},
		}
	}

	switch entry.Status {
	case statusProcessing:
		rlog.Info("concurrent request detected", "key", key)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}

	case statusCompleted:
		return replayCompleted(req, next, entry, key)

	default:
		rlog.Warn("unknown cache entry status, processing as new request", "key", key, "status", entry.Status)
		return next(req)
	}
}

// replayCompleted returns the cached response for a completed request
func replayCompleted(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, key string) middleware.Response {
	if len(entry.Response) > 0 {
		rlog.Info("returning cached response", "key", key)

		responseType := req.Data().API.ResponseType
		if responseType != nil {
			responseValue := reflect.New(responseType.Elem()).Interface()

			if err := json.Unmarshal(entry.Response, responseValue); err == nil {
				return middleware.Response{Payload: responseValue}
			}
			rlog.Error("failed to unmarshal cached response", "key", key)
		}
	}

	// Corrupted cache entry: fall through and process as a new request.
	return next(req)
}

// markProcessing claims the key for the in-flight request
func markProcessing(ctx context.Context, cacheKey model.IdempotencyKey) *errs.Error {
	if err := Keyspace.Set(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:    statusProcessing,
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}
	}
	return nil
}

// clearEntry removes a processing entry so a failed request can be retried
func clearEntry(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, err := Keyspace.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to clear failed request from cache", "error", err)
	}
}

// markCompleted caches the successful response for replay
func markCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash, key string, response middleware.Response) {
	entry := model.IdempotencyCacheEntry{
		Status:          statusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if response.Payload != nil {
		payload, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return
		}
		entry.Response = payload
	}

	if err := Keyspace.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to cache successful response", "error", err)
	}

	rlog.Debug("request completed and response cached", "key", key)
}
