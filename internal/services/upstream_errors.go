package services

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/yifan996/Itinerary/pkg/coze"
	"github.com/yifan996/Itinerary/pkg/utils"
)

// ClassifyUpstreamError sorts an error from a remote call into a transport
// failure or a remote application failure. Errors of neither kind are
// returned unchanged.
func ClassifyUpstreamError(err error) error {
	if err == nil {
		return nil
	}
	var upstream *utils.UpstreamError
	if errors.As(err, &upstream) || errors.Is(err, utils.ErrUpstreamTransport) {
		return err
	}

	var apiErr *coze.APIError
	if errors.As(err, &apiErr) {
		return &utils.UpstreamError{StatusCode: apiErr.StatusCode, Message: apiErr.Message, Err: err}
	}

	var netErr net.Error
	if errors.Is(err, coze.ErrTransport) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", utils.ErrUpstreamTransport, err)
	}
	return err
}
