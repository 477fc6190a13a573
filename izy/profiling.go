package izy

import (
	"fmt"
	"os"

	"github.com/MRtecno98/afero"
)

// NewProfileFilename returns the first profile.N.pprof that does not exist yet.
func NewProfileFilename(fs afero.Fs) string {
	for i := 0; ; i++ {
		filename := fmt.Sprintf("profile.%d.pprof", i)
		if _, err := fs.Stat(filename); os.IsNotExist(err) {
			return filename
		}
	}
}
