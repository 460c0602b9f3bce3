package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"mileage/pkg/logger"
	"mileage/pkg/mileageclient"
)

type options struct {
	server   string
	params   mileageclient.Params
	page     int
	pageSize int
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	client := mileageclient.NewClient(httpClient, opts.server, logger.Nop())

	entries, err := client.Search(ctx, opts.params)
	if err != nil {
		var apiErr *mileageclient.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("search failed (%d):\n  %s", apiErr.Code, strings.Join(apiErr.Messages, "\n  "))
		}
		return err
	}

	page, total := mileageclient.Paginate(entries, opts.page, opts.pageSize)
	return render(out, page, opts.page, total, len(entries))
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("mileagecli", flag.ContinueOnError)

	var (
		opts                options
		origin, destination string
		minFees, maxFees    string
	)
	fs.StringVar(&origin, "origin", "", "comma-separated origin IATA codes")
	fs.StringVar(&destination, "destination", "", "comma-separated destination IATA codes")
	fs.StringVar(&opts.params.DepartureDate, "date", "", "departure date, YYYY-MM-DD")
	fs.StringVar(&minFees, "min-fees", "", "keep entries with any cabin tax cost >= value")
	fs.StringVar(&maxFees, "max-fees", "", "keep entries with any cabin tax cost <= value")
	fs.BoolVar(&opts.params.OnlyDirectFlights, "direct", false, "keep entries with any direct cabin")
	fs.IntVar(&opts.page, "page", 1, "page to display, 1-based")
	fs.IntVar(&opts.pageSize, "page-size", 10, "entries per page")
	fs.StringVar(&opts.server, "server", "http://localhost:8080", "mileage api base url")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts.params.OriginAirports = splitList(origin)
	opts.params.DestinationAirports = splitList(destination)

	var err error
	if opts.params.MinimumFees, err = parseFee("min-fees", minFees); err != nil {
		return options{}, err
	}
	if opts.params.MaximumFees, err = parseFee("max-fees", maxFees); err != nil {
		return options{}, err
	}
	return opts, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseFee(name, raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid -%s %q: %w", name, raw, err)
	}
	return &v, nil
}

func render(out io.Writer, entries []mileageclient.Entry, page, totalPages, totalEntries int) error {
	if totalEntries == 0 {
		_, err := fmt.Fprintln(out, "no availability found")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUTE\tDATE\tSOURCE\tECONOMY\tPREMIUM\tBUSINESS\tFIRST")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s-%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Route.OriginAirport, e.Route.DestinationAirport, e.Date, e.Route.Source,
			cabinCell(e.IsEconomyAvailable, e.EconomyMileageCost, e.EconomyTaxCost, e.TaxesCurrency, e.EconomyRemainingSeats, e.EconomyDirect),
			cabinCell(e.IsPremiumAvailable, e.PremiumMileageCost, e.PremiumTaxCost, e.TaxesCurrency, e.PremiumRemainingSeats, e.PremiumDirect),
			cabinCell(e.IsBusinessAvailable, e.BusinessMileageCost, e.BusinessTaxCost, e.TaxesCurrency, e.BusinessRemainingSeats, e.BusinessDirect),
			cabinCell(e.IsFirstAvailable, e.FirstMileageCost, e.FirstTaxCost, e.TaxesCurrency, e.FirstRemainingSeats, e.FirstDirect),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\npage %d of %d (%d entries)\n", max(page, 1), totalPages, totalEntries)
	return err
}

func cabinCell(available bool, miles *float64, taxes float64, currency string, seats int, direct bool) string {
	if !available {
		return "-"
	}

	cost := "?"
	if miles != nil {
		cost = strconv.FormatFloat(*miles, 'f', 0, 64)
	}

	cell := fmt.Sprintf("%s mi + %.2f %s, %d seats", cost, taxes, currency, seats)
	if direct {
		cell += ", direct"
	}
	return cell
}
