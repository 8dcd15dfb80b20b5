package root

const (
	exitCodeFailed = 1
	exitCodeUsage  = 2
)

type checkExitError struct {
	code int
	msg  string
}

func (e checkExitError) Error() string { return e.msg }
func (e checkExitError) ExitCode() int { return e.code }

func usageErr(err error) error {
	return checkExitError{code: exitCodeUsage, msg: err.Error()}
}
