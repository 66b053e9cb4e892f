package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttachment_States(t *testing.T) {
	none := NoAttachment()
	require.True(t, none.IsZero())

	live := AttachmentFromFile(&LiveFile{Name: "a.png", MediaType: "image/png", Data: []byte{1}})
	f, ok := live.File()
	require.True(t, ok)
	require.Equal(t, "a.png", f.Name)
	_, ok = live.Ref()
	require.False(t, ok)

	ref := AttachmentFromRef("data:image/png;base64,AQ==")
	r, ok := ref.Ref()
	require.True(t, ok)
	require.Equal(t, "data:image/png;base64,AQ==", r)
	_, ok = ref.File()
	require.False(t, ok)
}

func TestAttachment_NilAndEmptyCollapseToZero(t *testing.T) {
	require.True(t, AttachmentFromFile(nil).IsZero())
	require.True(t, AttachmentFromRef("").IsZero())
}

func TestAttachment_MarshalNeverEmitsLiveHandle(t *testing.T) {
	live := AttachmentFromFile(&LiveFile{Name: "a.png", MediaType: "image/png", Data: []byte{1, 2}})
	b, err := json.Marshal(live)
	require.NoError(t, err)
	require.Equal(t, "null", string(b))
}

func TestAttachment_JSONRoundTripForRef(t *testing.T) {
	in := AttachmentFromRef("data:image/jpeg;base64,AQID")
	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out Attachment
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, in, out)
}

func TestRegistrationDraft_AbsentSectionsStayAbsent(t *testing.T) {
	d := RegistrationDraft{
		PersonalDetails: &PersonalDetails{Firstname: "Ana", Lastname: "Lee", Email: "ana@x.com"},
	}
	b, err := json.Marshal(d)
	require.NoError(t, err)

	var back RegistrationDraft
	require.NoError(t, json.Unmarshal(b, &back))
	require.NotNil(t, back.PersonalDetails)
	require.Nil(t, back.Workspace)
	require.Nil(t, back.AboutYou)
	require.Equal(t, "Ana", back.PersonalDetails.Firstname)
}
