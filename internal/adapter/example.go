package adapter

// ExampleName is the entrypoint name of the example adapter.
const ExampleName = "example"

// Example is the scaffold adapter shipped with the core.
type Example struct{}

func (Example) Name() string { return ExampleName }

func (Example) Banner() string { return "daggerml adapter scaffold: " + ExampleName }
