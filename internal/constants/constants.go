package constants

const (
	FilePermissionOwnerRW = 0644
	LockFileSuffix        = ".lock"
	TempFilePattern       = ".%s.tmp"
)

const (
	OutputFormatYAML = "yaml"
	OutputFormatJSON = "json"
)
