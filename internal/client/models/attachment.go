package models

import "encoding/json"

// LiveFile is an in-memory file selected by the user: raw bytes plus the
// metadata needed to upload or re-encode it.
type LiveFile struct {
	Name      string
	MediaType string
	Data      []byte
}

// Size returns the payload size in bytes.
func (f *LiveFile) Size() int { return len(f.Data) }

type attachmentState int

const (
	attachmentNone attachmentState = iota
	attachmentLive
	attachmentRef
)

// Attachment models the three states a file-bearing form field can be in:
// empty, a live in-memory file, or a text-safe encoded reference restored
// from (or destined for) durable storage. Exactly one representation is
// authoritative at a time; transitions happen only through the constructors,
// so a live handle can never leak into a serialized draft.
type Attachment struct {
	state attachmentState
	file  *LiveFile
	ref   string
}

// NoAttachment returns the empty attachment.
func NoAttachment() Attachment { return Attachment{} }

// AttachmentFromFile wraps a live in-memory file. A nil file yields the
// empty attachment.
func AttachmentFromFile(f *LiveFile) Attachment {
	if f == nil {
		return Attachment{}
	}
	return Attachment{state: attachmentLive, file: f}
}

// AttachmentFromRef wraps an encoded text reference. An empty string yields
// the empty attachment.
func AttachmentFromRef(ref string) Attachment {
	if ref == "" {
		return Attachment{}
	}
	return Attachment{state: attachmentRef, ref: ref}
}

// IsZero reports whether the attachment is empty.
func (a Attachment) IsZero() bool { return a.state == attachmentNone }

// File returns the live file when that representation is authoritative.
func (a Attachment) File() (*LiveFile, bool) {
	if a.state != attachmentLive {
		return nil, false
	}
	return a.file, true
}

// Ref returns the encoded reference when that representation is authoritative.
func (a Attachment) Ref() (string, bool) {
	if a.state != attachmentRef {
		return "", false
	}
	return a.ref, true
}

// MarshalJSON emits the encoded reference, or null for the empty and live
// states. Callers that need the live payload persisted must convert it to a
// reference first; the live handle itself is never serialized.
func (a Attachment) MarshalJSON() ([]byte, error) {
	if a.state == attachmentRef {
		return json.Marshal(a.ref)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts null or an encoded reference string.
func (a *Attachment) UnmarshalJSON(b []byte) error {
	var ref *string
	if err := json.Unmarshal(b, &ref); err != nil {
		return err
	}
	if ref == nil {
		*a = Attachment{}
		return nil
	}
	*a = AttachmentFromRef(*ref)
	return nil
}
