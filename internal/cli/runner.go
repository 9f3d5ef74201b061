// Package cli implements the interactive command loop. It is thin I/O glue:
// commands are tokenized, flags parsed, and the work delegated to the domain
// services; state is saved after every successful command.
package cli

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/akwright/studybuddy/internal/csvstore"
	"github.com/akwright/studybuddy/internal/domain/schedule"
	"github.com/akwright/studybuddy/internal/domain/session"
	"github.com/akwright/studybuddy/internal/domain/student"
	"github.com/google/uuid"
)

// Runner drives the interactive command loop.
type Runner struct {
	students  *student.Service
	sessions  *session.Service
	store     *csvstore.Store
	exportDir string
	logger    *slog.Logger
	in        io.Reader
	out       io.Writer
}

// New creates a command loop runner reading from in and writing to out.
func New(students *student.Service, sessions *session.Service, store *csvstore.Store, exportDir string, logger *slog.Logger, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		students:  students,
		sessions:  sessions,
		store:     store,
		exportDir: exportDir,
		logger:    logger,
		in:        in,
		out:       out,
	}
}

// Run processes commands until "exit" or end of input. Command failures are
// printed and the loop continues; only a failed save on exit is returned.
func (r *Runner) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Study Buddy. Type 'help' for commands.")
	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "exit":
			if err := r.store.Save(); err != nil {
				return fmt.Errorf("saving on exit: %w", err)
			}
			fmt.Fprintln(r.out, "Saved. Bye!")
			return nil
		case "help":
			r.printHelp()
			continue
		}

		r.logger.Debug("executing command", "command_id", uuid.NewString(), "input", line)
		if err := r.Execute(ctx, line); err != nil {
			fmt.Fprintf(r.out, "ERROR: %v\n", err)
			continue
		}
		// Save after each successful command for reliability.
		if err := r.store.Save(); err != nil {
			fmt.Fprintf(r.out, "ERROR: %v\n", err)
		}
	}
}

// Execute dispatches a single command line.
func (r *Runner) Execute(ctx context.Context, line string) error {
	toks := tokenize(line)
	if len(toks) == 0 {
		return nil
	}
	cmd := strings.ToLower(toks[0])
	rest := toks[1:]
	sub := ""
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "--") {
		sub = strings.ToLower(rest[0])
		rest = rest[1:]
	}
	flags := parseFlags(rest)

	var err error
	switch cmd {
	case "profile":
		err = r.profile(ctx, sub, flags)
	case "course":
		err = r.course(ctx, sub, flags)
	case "availability":
		err = r.availability(ctx, sub, flags)
	case "classmates":
		err = r.classmates(ctx, flags)
	case "match":
		err = r.match(ctx, sub, flags)
	case "session":
		err = r.session(ctx, sub, flags)
	case "export":
		err = r.export(ctx, sub, flags)
	default:
		return fmt.Errorf("unknown command %q, type 'help'", cmd)
	}
	if err != nil {
		return err
	}
	if ignored := flags.unused(); ignored != nil {
		fmt.Fprintf(r.out, "WARNING: ignored flags %v\n", ignored)
	}
	return nil
}

func (r *Runner) profile(ctx context.Context, sub string, flags flagSet) error {
	if sub != "create" {
		return fmt.Errorf("unknown profile subcommand %q (want create)", sub)
	}
	name, err := flags.need("name")
	if err != nil {
		return err
	}
	email, err := flags.need("email")
	if err != nil {
		return err
	}
	stu, err := r.students.CreateProfile(ctx, name, email)
	if err != nil {
		return err
	}
	r.printRow("id", "name", "email")
	r.printRow(stu.ID, stu.Name, stu.Email)
	return nil
}

func (r *Runner) course(ctx context.Context, sub string, flags flagSet) error {
	id, err := flags.need("id")
	if err != nil {
		return err
	}
	course, err := flags.need("course")
	if err != nil {
		return err
	}
	switch sub {
	case "add":
		err = r.students.AddCourse(ctx, id, course)
	case "remove":
		err = r.students.RemoveCourse(ctx, id, course)
	default:
		return fmt.Errorf("unknown course subcommand %q (want add or remove)", sub)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, "OK")
	return nil
}

func (r *Runner) availability(ctx context.Context, sub string, flags flagSet) error {
	id, err := flags.need("id")
	if err != nil {
		return err
	}
	dowText, err := flags.need("dow")
	if err != nil {
		return err
	}
	startText, err := flags.need("start")
	if err != nil {
		return err
	}
	endText, err := flags.need("end")
	if err != nil {
		return err
	}

	day, err := schedule.ParseWeekday(dowText)
	if err != nil {
		return err
	}
	start, err := schedule.ParseTimeOfDay(startText)
	if err != nil {
		return err
	}
	end, err := schedule.ParseTimeOfDay(endText)
	if err != nil {
		return err
	}

	switch sub {
	case "add":
		err = r.students.AddAvailability(ctx, id, day, start, end)
	case "remove":
		err = r.students.RemoveAvailability(ctx, id, day, start, end)
	default:
		return fmt.Errorf("unknown availability subcommand %q (want add or remove)", sub)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, "OK")
	return nil
}

func (r *Runner) classmates(ctx context.Context, flags flagSet) error {
	course, err := flags.need("course")
	if err != nil {
		return err
	}
	list, err := r.students.ClassmatesInCourse(ctx, course)
	if err != nil {
		return err
	}
	r.printStudents(list)
	return nil
}

func (r *Runner) match(ctx context.Context, sub string, flags flagSet) error {
	if sub != "suggest" {
		return fmt.Errorf("unknown match subcommand %q (want suggest)", sub)
	}
	id, err := flags.need("id")
	if err != nil {
		return err
	}
	course, err := flags.need("course")
	if err != nil {
		return err
	}
	list, err := r.students.SuggestMatches(ctx, id, course)
	if err != nil {
		return err
	}
	r.printStudents(list)
	return nil
}

func (r *Runner) session(ctx context.Context, sub string, flags flagSet) error {
	switch sub {
	case "propose":
		id, err := flags.need("id")
		if err != nil {
			return err
		}
		course, err := flags.need("course")
		if err != nil {
			return err
		}
		slotText, err := flags.need("slot")
		if err != nil {
			return err
		}
		slot, err := schedule.ParseSlot(slotText)
		if err != nil {
			return err
		}
		inviteesText, err := flags.need("invitees")
		if err != nil {
			return err
		}
		var invitees []string
		for _, inv := range strings.Split(inviteesText, ",") {
			if inv = strings.TrimSpace(inv); inv != "" {
				invitees = append(invitees, inv)
			}
		}
		sess, err := r.sessions.Propose(ctx, id, course, slot, invitees)
		if err != nil {
			return err
		}
		r.printRow("id", "course", "slot", "status", "participants")
		r.printRow(sess.ID, sess.CourseCode, sess.Slot.String(), string(sess.Status), strings.Join(sess.Participants, ";"))
		return nil

	case "respond":
		id, err := flags.need("id")
		if err != nil {
			return err
		}
		sessionID, err := flags.need("session")
		if err != nil {
			return err
		}
		acceptText, err := flags.need("accept")
		if err != nil {
			return err
		}
		accept := strings.EqualFold(acceptText, "true")
		if _, err := r.sessions.Respond(ctx, id, sessionID, accept); err != nil {
			return err
		}
		fmt.Fprintln(r.out, "OK")
		return nil

	case "list":
		id, err := flags.need("id")
		if err != nil {
			return err
		}
		list, err := r.sessions.ListFor(ctx, id)
		if err != nil {
			return err
		}
		r.printRow("id", "course", "slot", "status", "participants", "inviter")
		for _, sess := range list {
			r.printRow(sess.ID, sess.CourseCode, sess.Slot.String(), string(sess.Status), strings.Join(sess.Participants, ";"), sess.InviterID)
		}
		return nil

	default:
		return fmt.Errorf("unknown session subcommand %q (want propose, respond, or list)", sub)
	}
}

func (r *Runner) export(ctx context.Context, sub string, flags flagSet) error {
	if sub != "csv" {
		return fmt.Errorf("unknown export subcommand %q (want csv)", sub)
	}
	dir := flags.take("dir", r.exportDir)
	if err := r.store.Save(); err != nil {
		return err
	}
	if err := r.store.ExportTo(dir); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "EXPORTED to %s\n", dir)
	return nil
}

func (r *Runner) printStudents(list []*student.Student) {
	r.printRow("id", "name", "email")
	for _, stu := range list {
		r.printRow(stu.ID, stu.Name, stu.Email)
	}
}

// printRow writes one comma-delimited row with the same quoting rules as the
// persisted files.
func (r *Runner) printRow(cols ...string) {
	w := csv.NewWriter(r.out)
	_ = w.Write(cols)
	w.Flush()
}

func (r *Runner) printHelp() {
	fmt.Fprint(r.out, `Commands (CSV output):
  profile create --name <NAME> --email <EMAIL>
  course add --id <s#> --course <CODE>
  course remove --id <s#> --course <CODE>
  availability add --id <s#> --dow <MON..SUN> --start <HH:MM> --end <HH:MM>
  availability remove --id <s#> --dow <MON..SUN> --start <HH:MM> --end <HH:MM>
  classmates --course <CODE>
  match suggest --id <s#> --course <CODE>
  session propose --id <s#> --course <CODE> --slot "DOW HH:MM-HH:MM" --invitees s2,s3
  session respond --id <s#> --session <S#> --accept <true|false>
  session list --id <s#>
  export csv --dir <DIR>
  help | exit
`)
}
