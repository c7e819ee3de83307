package study

import (
	"fmt"
	"os"

	"github.com/dendrascience/eosarchive/util"
)

// ArchiveAndClean compacts the mirrored study destRoot/name/ into
// destRoot/name.zip and then deletes the folder.
//
// Entries in the zip are rooted at name/. The folder is removed only once the
// archive has been written and closed; if archiving fails the folder is left
// as is and the (possibly partial) zip is not cleaned up.
func ArchiveAndClean(name, destRoot string) error {
	if err := validateName(name); err != nil {
		return err
	}
	dir := Archive(destRoot, name)

	if err := util.ZipDirectory(dir, ArchiveZip(destRoot, name), name); err != nil {
		return err
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %s after archiving: %w", dir, err)
	}
	return nil
}
