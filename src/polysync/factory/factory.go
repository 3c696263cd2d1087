package factory

import (
	"github.com/gofrs/uuid"
	"github.com/uber/polysync/src/polysync/entity"
	"go.lsp.dev/jsonrpc2"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// JSONRPCNotification is a user-defined factory for a JSON-RPC notification containing the specified method and parameters.
func JSONRPCNotification(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewNotification(method, params)
	return req
}

// ProjectWithModels is a factory for a Project holding one model per name and no requests.
func ProjectWithModels(names ...string) entity.Project {
	p := entity.EmptyProject()
	for _, name := range names {
		p.Models = append(p.Models, entity.Entity{Name: name})
	}
	return p
}

// Descriptors is a factory for one descriptor per supported syntax, addressed at tcp://<syntax>.test.
func Descriptors() []entity.SyntaxDescriptor {
	descriptors := make([]entity.SyntaxDescriptor, 0, entity.NumSyntaxes)
	for _, id := range entity.AllSyntaxes() {
		descriptors = append(descriptors, entity.SyntaxDescriptor{
			ID:          id,
			Address:     "tcp://" + id.String() + ".test",
			Mode:        id.String(),
			DisplayName: id.String(),
		})
	}
	return descriptors
}
