package handler

import (
	"context"
	"fmt"

	"github.com/uber/polysync/src/polysync/internal/serverinfofile"
	"github.com/uber/polysync/src/polysync/repository/buffers"
)

const _fmtInfoFileKey = "%s-address"

// Output the conversion service endpoint of every syntax, so that tooling can check which services the editor depends on.
// The UI endpoint is added to the same file by the JSON-RPC module once it is listening.
func outputConverterEndpoints(repo buffers.Repository, infofile serverinfofile.ServerInfoFile) error {
	ctx := context.Background()
	for _, id := range repo.List(ctx) {
		d, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := infofile.UpdateField(fmt.Sprintf(_fmtInfoFileKey, id), d.Address); err != nil {
			return fmt.Errorf("outputting %q address to info file: %w", id, err)
		}
	}
	return nil
}
