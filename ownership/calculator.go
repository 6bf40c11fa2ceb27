package ownership

// Command computes a new result. It is handed the calculator it runs on,
// so it never needs to hold on to it.
type Command func(c *Calculator, value int) int

type Calculator struct {
	result  int
	command Command
}

// SetCommand replaces the command. A nil command turns Execute into a no-op.
func (c *Calculator) SetCommand(cmd Command) {
	c.command = cmd
}

// Execute runs the command with value and stores its result.
func (c *Calculator) Execute(value int) {
	if c.command == nil {
		return
	}
	c.result = c.command(c, value)
}

func (c *Calculator) Result() int {
	return c.result
}

// Accumulate adds value to the current result.
func Accumulate(c *Calculator, value int) int {
	return c.Result() + value
}
