package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// NamePrefix tags every container owned by this engine.
	NamePrefix = "exr"

	maxUserPart = 4
	hashLen     = 15
)

// SanitizeUserName reduces an arbitrary display name to a runtime-safe
// identifier fragment: lowercase, alphanumerics only, alphanumeric at both
// edges, capped at maxUserPart characters. Falls back to "u" when nothing
// survives.
func SanitizeUserName(userName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(userName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if len(s) > maxUserPart {
		s = s[:maxUserPart]
	}
	if s == "" {
		s = "u"
	}
	return s
}

// DeriveExecutorName maps (user, task, subtask) to a deterministic container
// name. Repeated submissions for the same triple address the same container,
// which is what makes the reuse path work without any server-side bookkeeping.
func DeriveExecutorName(userName string, taskID int64, subtaskID int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s-%d-%d", userName, taskID, subtaskID)))
	digest := hex.EncodeToString(sum[:])[:hashLen]
	return fmt.Sprintf("%s-%s%s", NamePrefix, SanitizeUserName(userName), digest)
}
