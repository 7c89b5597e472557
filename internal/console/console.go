// Package console runs an interactive command loop over a resume storage.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"resume-storage/internal/resumes"
	"resume-storage/internal/shared/metrics"
	"resume-storage/internal/storage"
)

const prompt = "> "

const usage = `commands:
  list                          print all resumes
  size                          print the number of resumes
  save <full name>              save a resume with a generated uuid
  save-uuid <uuid> <full name>  save a resume with the given uuid
  update <uuid> <full name>     replace a resume
  get <uuid>                    print a resume
  delete <uuid>                 delete a resume
  clear                         delete all resumes
  stats                         print storage metrics
  help                          print this message
  exit                          quit
`

// ErrUsage indicates a malformed command line.
var ErrUsage = errors.New("invalid command")

// Console reads commands from In and writes results to Out. Store is only
// touched from the goroutine calling Run or Execute.
type Console struct {
	Store   storage.Storage
	Metrics *metrics.Metrics
	In      io.Reader
	Out     io.Writer
}

// New constructs a Console.
func New(store storage.Storage, m *metrics.Metrics, in io.Reader, out io.Writer) *Console {
	return &Console{Store: store, Metrics: m, In: in, Out: out}
}

// Run executes commands until exit, end of input or ctx cancellation.
func (c *Console) Run(ctx context.Context) error {
	// Stops the reader goroutine however Run returns.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(c.Out, prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.Out)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(c.Out)
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			quit, err := c.Execute(line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// Execute runs one command line. It reports whether the loop should stop.
// Storage and usage failures are printed, not returned.
func (c *Console) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	var err error
	switch verb {
	case "exit", "quit":
		return true, nil
	case "help":
		_, err = io.WriteString(c.Out, usage)
	case "list":
		err = c.list()
	case "size":
		_, err = fmt.Fprintln(c.Out, c.Store.Size())
	case "save":
		err = c.save(args)
	case "save-uuid":
		err = c.saveWithUUID(args)
	case "update":
		err = c.update(args)
	case "get":
		err = c.get(args)
	case "delete":
		err = c.delete(args)
	case "clear":
		c.Store.Clear()
		_, err = fmt.Fprintln(c.Out, "cleared")
	case "stats":
		err = c.stats()
	default:
		err = fmt.Errorf("%w: unknown command %q", ErrUsage, verb)
	}
	return false, c.report(err)
}

func (c *Console) list() error {
	all := c.Store.GetAll()
	if len(all) == 0 {
		_, err := fmt.Fprintln(c.Out, "(empty)")
		return err
	}
	w := bufio.NewWriter(c.Out)
	for _, r := range all {
		fmt.Fprintln(w, r)
	}
	return w.Flush()
}

func (c *Console) save(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: save <full name>", ErrUsage)
	}
	return c.saved(resumes.New(strings.Join(args, " ")))
}

func (c *Console) saveWithUUID(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: save-uuid <uuid> <full name>", ErrUsage)
	}
	return c.saved(resumes.WithUUID(args[0], strings.Join(args[1:], " ")))
}

func (c *Console) saved(r resumes.Resume) error {
	if err := c.Store.Save(r); err != nil {
		return err
	}
	_, err := fmt.Fprintln(c.Out, "saved", r)
	return err
}

func (c *Console) update(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: update <uuid> <full name>", ErrUsage)
	}
	r := resumes.WithUUID(args[0], strings.Join(args[1:], " "))
	if err := c.Store.Update(r); err != nil {
		return err
	}
	_, err := fmt.Fprintln(c.Out, "updated", r)
	return err
}

func (c *Console) get(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: get <uuid>", ErrUsage)
	}
	r, err := c.Store.Get(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.Out, r)
	return err
}

func (c *Console) delete(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: delete <uuid>", ErrUsage)
	}
	if err := c.Store.Delete(args[0]); err != nil {
		return err
	}
	_, err := fmt.Fprintln(c.Out, "deleted", args[0])
	return err
}

func (c *Console) stats() error {
	if c.Metrics == nil {
		_, err := fmt.Fprintln(c.Out, "metrics disabled")
		return err
	}
	text, err := c.Metrics.Render()
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.Out, text)
	return err
}

// report prints recoverable failures and returns only output errors.
func (c *Console) report(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrUsage):
		_, werr := fmt.Fprintf(c.Out, "%v (type help for commands)\n", err)
		return werr
	case errors.Is(err, storage.ErrExist),
		errors.Is(err, storage.ErrNotExist),
		errors.Is(err, storage.ErrOverflow):
		_, werr := fmt.Fprintf(c.Out, "error: %v\n", err)
		return werr
	default:
		return err
	}
}
