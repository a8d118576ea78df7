package resolver

import "path/filepath"

const (
	dataDirName       = "data"
	targetFileName    = "config.json"
	exampleFileName   = "config.example.json"
	privateDirName    = "private_configs"
	privateConfigName = "aqua_config.json"
)

// PathsFor derives the target, example and private config paths from root.
// The private source lives beside the project, outside its tree.
func PathsFor(root string) Paths {
	root = filepath.Clean(root)
	dataDir := filepath.Join(root, dataDirName)

	return Paths{
		Target:  filepath.Join(dataDir, targetFileName),
		Example: filepath.Join(dataDir, exampleFileName),
		Private: filepath.Join(filepath.Dir(root), privateDirName, privateConfigName),
	}
}
