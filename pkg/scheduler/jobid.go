package scheduler

import (
	"fmt"
	"strings"

	"postomat/pkg/domain"
)

// maxSubLen caps the sanitized sub-identifier so job ids stay usable as
// store keys regardless of what the transport puts into message identities
const maxSubLen = 50

// MakeJobID builds a deterministic job id from the job kind, the owning
// entity id and an optional sub-identifier. The same inputs always produce
// the same id, and distinct logical jobs never collide, which makes
// replace-if-exists scheduling and targeted cancellation possible.
//
// The publish job of a post carries no sub-identifier, so at most one live
// publish job exists per post. Deletion jobs use "chatID_messageID" as sub
// to distinguish the per-message timers belonging to the same post.
func MakeJobID(kind domain.JobKind, entityID int64, sub ...string) string {
	id := fmt.Sprintf("%s_%d", kind, entityID)
	if len(sub) > 0 && sub[0] != "" {
		id += "_" + sanitizeSub(sub[0])
	}
	return id
}

// sanitizeSub replaces characters unsafe in the store's key space and caps
// the length
func sanitizeSub(sub string) string {
	r := strings.NewReplacer(":", "_", "-", "_", ".", "_", " ", "_")
	s := r.Replace(sub)
	if len(s) > maxSubLen {
		s = s[:maxSubLen]
	}
	return s
}
