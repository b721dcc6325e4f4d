package handler

import (
	"fmt"
	"strconv"

	"github.com/itchan-dev/anonboard/shared/domain"
	internal_errors "github.com/itchan-dev/anonboard/shared/errors"
)

// parseReplyId parses the reply_id parameter and returns a meaningful error
func parseReplyId(param string) (domain.ReplyId, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, internal_errors.BadRequest(fmt.Sprintf("invalid reply_id: must be an integer, got %q", param))
	}
	return val, nil
}
