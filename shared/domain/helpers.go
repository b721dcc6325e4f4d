package domain

import (
	"fmt"
	"time"
)

// for debug
func (r *Reply) String() string {
	return fmt.Sprintf("[id:%d, thread:%s, text:%q, created:%s, reported:%t]",
		r.Id, r.ThreadId, r.Text, r.CreatedOn.Format(time.StampMilli), r.Reported)
}

func (t *Thread) String() string {
	s := fmt.Sprintf("[id:%s, board:%s, text:%q, created:%s, bumped:%s, reported:%t, replies:[",
		t.Id, t.Board, t.Text, t.CreatedOn.Format(time.StampMilli), t.BumpedOn.Format(time.StampMilli), t.Reported)
	for i := range t.Replies {
		if i > 0 {
			s += ", "
		}
		s += t.Replies[i].String()
	}
	return s + "]]"
}
