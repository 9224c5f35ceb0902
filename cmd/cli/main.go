package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/amirasaad/ledger/infra/initializer"
	fixtures "github.com/amirasaad/ledger/internal/fixtures/customer"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/service/ledger"
	"github.com/shopspring/decimal"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  seed [file]                                    register the seed customers
  customers                                      list customers
  register <first_name> <surname> <id>           register a customer
  open <first_name> <surname> <id> <deposit>     open an account
  balance <account_id>                           show an account balance
  transfer <from> <to> <amount>                  transfer between accounts
  history <account_id>                           list an account's transactions`

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) < 1 {
		fmt.Fprintln(out, usage)
		return nil
	}
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.Close() //nolint:errcheck

	return execute(ctx, app.New(deps, cfg).LedgerService, args, out)
}

func execute(ctx context.Context, svc *ledger.Service, args []string, out io.Writer) error {
	cmd, args := args[0], args[1:]
	switch cmd {
	case "seed":
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		seeds, err := fixtures.LoadCustomersJSON(path)
		if err != nil {
			return err
		}
		added := 0
		for _, s := range seeds {
			c, err := svc.RegisterCustomer(ctx, s.FirstName, s.Surname, s.Identification)
			switch {
			case errors.Is(err, domain.ErrCustomerAlreadyExists):
				fmt.Fprintf(out, "exists  %d %s %s\n", c.ID, c.Name, c.Identification)
			case err != nil:
				return err
			default:
				added++
				fmt.Fprintf(out, "added   %d %s %s\n", c.ID, c.Name, c.Identification)
			}
		}
		fmt.Fprintf(out, "Database initialised: %d of %d customers added\n", added, len(seeds))
	case "customers":
		customers, err := svc.ListCustomers(ctx)
		if err != nil {
			return err
		}
		for _, c := range customers {
			fmt.Fprintf(out, "%d\t%s\t%s\n", c.ID, c.Name, c.Identification)
		}
	case "register":
		if len(args) < 3 {
			return errors.New("usage: register <first_name> <surname> <id>")
		}
		c, err := svc.RegisterCustomer(ctx, args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Customer registered: ID=%d, Name=%s\n", c.ID, c.Name)
	case "open":
		if len(args) < 4 {
			return errors.New("usage: open <first_name> <surname> <id> <deposit>")
		}
		deposit, err := decimal.NewFromString(args[3])
		if err != nil {
			return fmt.Errorf("invalid deposit: %w", err)
		}
		a, err := svc.OpenAccount(ctx, args[0], args[1], args[2], deposit)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Account opened: ID=%d, Owner=%s, Balance=%s\n", a.ID, a.Name, a.Balance.StringFixed(2))
	case "balance":
		if len(args) < 1 {
			return errors.New("usage: balance <account_id>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		balance, err := svc.GetBalance(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Account %d balance: %s\n", id, balance.StringFixed(2))
	case "transfer":
		if len(args) < 3 {
			return errors.New("usage: transfer <from> <to> <amount>")
		}
		from, err := parseID(args[0])
		if err != nil {
			return err
		}
		to, err := parseID(args[1])
		if err != nil {
			return err
		}
		amount, err := decimal.NewFromString(args[2])
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		tx, err := svc.Transfer(ctx, from, to, amount)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Transferred %s from %d to %d: %s\n", tx.Amount.StringFixed(2), from, to, tx.UUID)
	case "history":
		if len(args) < 1 {
			return errors.New("usage: history <account_id>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		txs, err := svc.GetTransactionHistory(ctx, id)
		if err != nil {
			return err
		}
		for _, tx := range txs {
			fmt.Fprintf(out, "%s\t%d -> %d\t%s\t%s\n",
				tx.UUID, tx.AccountIDFrom, tx.AccountIDTo, tx.Amount.StringFixed(2), tx.Timestamp)
		}
	default:
		return fmt.Errorf("unknown command: %s\n%s", cmd, usage)
	}
	return nil
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid account id %q: %w", s, err)
	}
	return uint(id), nil
}
