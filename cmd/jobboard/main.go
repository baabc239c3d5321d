package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"jobboard/internal/catalog"
	"jobboard/internal/config"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"
	"jobboard/internal/infrastructure/apiclient"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const usage = `usage:
  jobboard jobs [-search s] [-location l] [-salary-min n] [-salary-max n] [-dashboard]
  jobboard job <jobId>
  jobboard recruiter <recruiterId>

Environment: JOBBOARD_BASE_URL, JOBBOARD_TIMEOUT`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, logger *slog.Logger) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}
	client := apiclient.New(cfg, logger)

	switch args[0] {
	case "jobs":
		return listJobs(ctx, client, args[1:], out, logger)
	case "job":
		id, err := idArg(args[1:], "job")
		if err != nil {
			return err
		}
		return showJob(ctx, client, id, out)
	case "recruiter":
		id, err := idArg(args[1:], "recruiter")
		if err != nil {
			return err
		}
		cat := catalog.New(recruiterJobs{client: client, id: id}, logger)
		if err := cat.Refresh(ctx); err != nil {
			return err
		}
		active, closed := cat.Partition()
		return printDashboard(out, active, closed)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func listJobs(ctx context.Context, fetcher catalog.Fetcher, args []string, out io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("jobs", flag.ContinueOnError)
	var f catalog.Filter
	fs.StringVar(&f.Search, "search", "", "match title or company name")
	fs.StringVar(&f.Location, "location", "", "match location")
	fs.StringVar(&f.SalaryMin, "salary-min", "", "minimum salary")
	fs.StringVar(&f.SalaryMax, "salary-max", "", "maximum salary")
	dashboard := fs.Bool("dashboard", false, "split into active and closed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat := catalog.New(fetcher, logger)
	jobs, err := cat.Search(ctx, f)
	if err != nil {
		return err
	}
	if *dashboard {
		active, closed := catalog.Partition(jobs)
		return printDashboard(out, active, closed)
	}
	return printJobs(out, jobs)
}

// showJob fetches the job and its applications concurrently.
func showJob(ctx context.Context, client *apiclient.Client, id uuid.UUID, out io.Writer) error {
	var (
		l    job.Listing
		apps []application.Application
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		l, err = client.GetJob(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		apps, err = client.ListApplicationsForJob(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		if apiclient.IsNotFound(err) {
			return fmt.Errorf("job %s not found", id)
		}
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Title:\t%s\n", l.Title)
	fmt.Fprintf(tw, "Company:\t%s\n", l.CompanyName)
	fmt.Fprintf(tw, "Location:\t%s (%s)\n", l.Location, l.LocationType)
	fmt.Fprintf(tw, "Salary:\t%s\n", l.SalaryRange)
	fmt.Fprintf(tw, "Skills:\t%s\n", strings.Join(l.Skills, ", "))
	fmt.Fprintf(tw, "Deadline:\t%s\n", l.Deadline.Format("2006-01-02"))
	fmt.Fprintf(tw, "Status:\t%s\n", l.Status)
	fmt.Fprintf(tw, "Applications:\t%d\n", len(apps))
	for _, a := range apps {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", a.CandidateID, a.Status, a.ResumeURL)
	}
	return tw.Flush()
}

func printDashboard(out io.Writer, active, closed []job.Listing) error {
	fmt.Fprintf(out, "Active (%d)\n", len(active))
	if err := printJobs(out, active); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nClosed (%d)\n", len(closed))
	return printJobs(out, closed)
}

func printJobs(out io.Writer, jobs []job.Listing) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCOMPANY\tLOCATION\tSALARY\tSTATUS")
	for _, l := range jobs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", l.ID, l.Title, l.CompanyName, l.Location, l.SalaryRange, l.Status)
	}
	return tw.Flush()
}

// recruiterJobs scopes a catalog to one recruiter's postings.
type recruiterJobs struct {
	client *apiclient.Client
	id     uuid.UUID
}

func (r recruiterJobs) FetchJobs(ctx context.Context) ([]job.Listing, error) {
	return r.client.ListJobsByRecruiter(ctx, r.id)
}

func idArg(args []string, label string) (uuid.UUID, error) {
	if len(args) != 1 {
		return uuid.Nil, fmt.Errorf("expected exactly one %s id\n%s", label, usage)
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s id %q", label, args[0])
	}
	return id, nil
}
