package mapper

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/polysync/src/polysync/entity"
	"github.com/uber/polysync/src/polysync/factory"
	"github.com/uber/polysync/src/polysync/model"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/goleak"
)

func TestSyntaxDescriptorModel(t *testing.T) {
	d := entity.SyntaxDescriptor{
		ID:          entity.SyntaxTypeScript,
		Address:     "ws://localhost:7778",
		Mode:        "typescript",
		DisplayName: "TypeScript",
		Text:        "interface Pet {}",
	}
	m := SyntaxDescriptorToModel(d)
	assert.Equal(t, int(entity.SyntaxTypeScript), m.Syntax)

	got, err := ModelToSyntaxDescriptor(m)
	require.NoError(t, err)
	assert.Equal(t, d, got)

	_, err = ModelToSyntaxDescriptor(&model.SyntaxBuffer{Syntax: 9})
	assert.Error(t, err)
}

func TestProjectModel(t *testing.T) {
	p := factory.ProjectWithModels("Pet")
	m := ProjectToModel(p)
	p.Models[0].Name = "changed"
	assert.Equal(t, "Pet", m.Models[0].Name)

	out := ModelToProject(m)
	out.Models[0].Name = "changed again"
	assert.Equal(t, "Pet", m.Models[0].Name)
	assert.NotNil(t, out.Requests)
}

func TestNoticeToShowMessageParams(t *testing.T) {
	tests := []struct {
		notice entity.Notice
		want   protocol.MessageType
	}{
		{notice: entity.Notice{Type: entity.NoticeError, Message: "a"}, want: protocol.MessageTypeError},
		{notice: entity.Notice{Type: entity.NoticeWarning, Message: "b"}, want: protocol.MessageTypeWarning},
		{notice: entity.Notice{Type: entity.NoticeInfo, Message: "c"}, want: protocol.MessageTypeInfo},
	}
	for _, tt := range tests {
		params := NoticeToShowMessageParams(tt.notice)
		assert.Equal(t, tt.want, params.Type)
		assert.Equal(t, tt.notice.Message, params.Message)
	}
}

func TestTextsToPatch(t *testing.T) {
	assert.Empty(t, TextsToPatch("same", "same"))

	prev, next := "openapi: 3.0.0\ninfo: {}\n", "openapi: 3.0.0\ninfo: {title: pets}\n"
	patch := TextsToPatch(prev, next)
	require.NotEmpty(t, patch)

	dmp := diffmatchpatch.New()
	patches, err := dmp.PatchFromText(patch)
	require.NoError(t, err)
	applied, ok := dmp.PatchApply(patches, prev)
	assert.Equal(t, next, applied)
	for _, v := range ok {
		assert.True(t, v)
	}
}

func TestRequestToParams(t *testing.T) {
	t.Run("did change", func(t *testing.T) {
		params, err := RequestToDidChangeParams(factory.JSONRPCNotification(entity.MethodDidChange, entity.DidChangeParams{Text: "abc"}))
		require.NoError(t, err)
		assert.Equal(t, "abc", params.Text)

		_, err = RequestToDidChangeParams(factory.JSONRPCNotification(entity.MethodDidChange, "abc"))
		assert.ErrorContains(t, err, jsonrpc2.ErrParse.Error())
	})

	t.Run("tab click", func(t *testing.T) {
		params, err := RequestToTabClickParams(factory.JSONRPCRequest(entity.MethodTabClick, map[string]string{"syntax": "typescript"}))
		require.NoError(t, err)
		assert.Equal(t, entity.SyntaxTypeScript, params.Syntax)

		_, err = RequestToTabClickParams(factory.JSONRPCRequest(entity.MethodTabClick, map[string]string{}))
		assert.Error(t, err)

		_, err = RequestToTabClickParams(factory.JSONRPCRequest(entity.MethodTabClick, map[string]string{"syntax": "cobol"}))
		assert.Error(t, err)
	})

	t.Run("save", func(t *testing.T) {
		params, err := RequestToSaveParams(factory.JSONRPCRequest(entity.MethodSave, nil))
		require.NoError(t, err)
		assert.Nil(t, params.Text)

		text := "X"
		params, err = RequestToSaveParams(factory.JSONRPCRequest(entity.MethodSave, entity.SaveParams{Text: &text}))
		require.NoError(t, err)
		require.NotNil(t, params.Text)
		assert.Equal(t, "X", *params.Text)
	})
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
