package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

// Console is the interactive admin menu used by branch staff on a terminal.
type Console struct {
	vehicles  service.VehicleService
	customers service.CustomerService
	rentals   service.RentalService
	promos    service.PromoService
	loyalty   service.LoyaltyService
	branches  service.BranchService
	auth      service.AuthService

	in      *bufio.Reader
	out     io.Writer
	timeout time.Duration
}

func NewConsole(
	vehicles service.VehicleService,
	customers service.CustomerService,
	rentals service.RentalService,
	promos service.PromoService,
	loyalty service.LoyaltyService,
	branches service.BranchService,
	auth service.AuthService,
	opTimeout time.Duration,
) *Console {
	if opTimeout <= 0 {
		opTimeout = 10 * time.Second
	}
	return &Console{
		vehicles:  vehicles,
		customers: customers,
		rentals:   rentals,
		promos:    promos,
		loyalty:   loyalty,
		branches:  branches,
		auth:      auth,
		in:        bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		timeout:   opTimeout,
	}
}

const menu = `
=== Car Rental Administration ===
 1. List vehicles
 2. List customers
 3. Register customer
 4. Rent vehicle
 5. Return vehicle
 6. Customer rental history
 7. Apply promo to rental
 8. Branch statistics
 9. Create staff user
 0. Exit
`

// Run loops over the menu until the operator exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		fmt.Fprint(c.out, menu, "Choice: ")
		choice, err := c.readLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		opCtx, cancel := context.WithTimeout(ctx, c.timeout)
		switch choice {
		case "0", "exit", "q":
			cancel()
			return nil
		case "1":
			err = c.listVehicles(opCtx)
		case "2":
			err = c.listCustomers(opCtx)
		case "3":
			err = c.registerCustomer(opCtx)
		case "4":
			err = c.rentVehicle(opCtx)
		case "5":
			err = c.returnVehicle(opCtx)
		case "6":
			err = c.customerHistory(opCtx)
		case "7":
			err = c.applyPromo(opCtx)
		case "8":
			err = c.branchStats(opCtx)
		case "9":
			err = c.createStaffUser(opCtx)
		default:
			fmt.Fprintln(c.out, "Unknown choice.")
		}
		cancel()
		if err != nil {
			fmt.Fprintf(c.out, "Error: %s\n", domain.MessageOf(err))
		}
	}
}

func (c *Console) listVehicles(ctx context.Context) error {
	status, err := c.prompt("Status filter (available/rented/maintenance, empty for all)")
	if err != nil {
		return err
	}
	vehicles, err := c.vehicles.List(ctx, status, "")
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tBRAND\tMODEL\tTYPE\tSTATUS\tRATE/DAY")
	for _, v := range vehicles {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%.2f\n",
			v.ID, v.Code, v.Brand, v.Model, v.Type, v.Status, v.DailyRate)
	}
	return w.Flush()
}

func (c *Console) listCustomers(ctx context.Context) error {
	search, err := c.prompt("Search (empty for all)")
	if err != nil {
		return err
	}
	customers, err := c.customers.List(ctx, search)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tEMAIL\tPHONE\tLOYALTY")
	for _, cust := range customers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%t\n",
			cust.ID, cust.Code, cust.FullName(), cust.Email, cust.Phone, cust.IsLoyaltyMember)
	}
	return w.Flush()
}

func (c *Console) registerCustomer(ctx context.Context) error {
	first, err := c.prompt("First name")
	if err != nil {
		return err
	}
	last, err := c.prompt("Last name")
	if err != nil {
		return err
	}
	email, err := c.prompt("Email")
	if err != nil {
		return err
	}
	phone, err := c.prompt("Phone")
	if err != nil {
		return err
	}
	license, err := c.prompt("License number")
	if err != nil {
		return err
	}
	customer, err := c.customers.Create(ctx, &domain.Customer{
		FirstName:     first,
		LastName:      last,
		Email:         email,
		Phone:         phone,
		LicenseNumber: license,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Registered customer %d (%s)\n", customer.ID, customer.Code)
	return nil
}

func (c *Console) rentVehicle(ctx context.Context) error {
	customerID, err := c.promptID("Customer ID")
	if err != nil {
		return err
	}
	vehicleRaw, err := c.prompt("Vehicle ID or code")
	if err != nil {
		return err
	}
	var vehicleID int32
	if id, convErr := strconv.ParseInt(vehicleRaw, 10, 32); convErr == nil && id > 0 {
		vehicleID = int32(id)
	} else {
		vehicle, err := c.vehicles.GetByCode(ctx, vehicleRaw)
		if err != nil {
			return err
		}
		vehicleID = vehicle.ID
	}
	days, err := c.promptID("Rental days")
	if err != nil {
		return err
	}
	pickup := time.Now()
	rental, err := c.rentals.Create(ctx, &service.CreateRentalInput{
		CustomerID:       customerID,
		VehicleID:        vehicleID,
		PickupAt:         pickup,
		ExpectedReturnAt: pickup.AddDate(0, 0, int(days)),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Rental %d created for %s, estimated cost %.2f\n",
		rental.ID, rental.VehicleInfo, deref(rental.TotalCost))
	return nil
}

func (c *Console) returnVehicle(ctx context.Context) error {
	rentalID, err := c.promptID("Rental ID")
	if err != nil {
		return err
	}
	chargesRaw, err := c.prompt("Additional charges (empty for 0)")
	if err != nil {
		return err
	}
	var charges float64
	if chargesRaw != "" {
		charges, err = strconv.ParseFloat(chargesRaw, 64)
		if err != nil {
			return domain.Validationf("invalid amount %q", chargesRaw)
		}
	}
	rental, err := c.rentals.Return(ctx, rentalID, &service.ReturnVehicleInput{
		ActualReturnAt:    time.Now(),
		AdditionalCharges: charges,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Rental %d closed, total cost %.2f\n", rental.ID, deref(rental.TotalCost))
	return nil
}

func (c *Console) customerHistory(ctx context.Context) error {
	customerID, err := c.promptID("Customer ID")
	if err != nil {
		return err
	}
	entries, err := c.rentals.CustomerHistory(ctx, customerID)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RENTAL\tVEHICLE\tPICKUP\tCOST\tRATING")
	for _, e := range entries {
		rating := "-"
		if e.Rating != nil {
			rating = fmt.Sprintf("%.1f", *e.Rating)
		}
		fmt.Fprintf(w, "%d\t%s %s\t%s\t%.2f\t%s\n",
			e.RentalID, e.Brand, e.Model, e.PickupAt.Format("2006-01-02"), deref(e.TotalCost), rating)
	}
	return w.Flush()
}

func (c *Console) applyPromo(ctx context.Context) error {
	rentalID, err := c.promptID("Rental ID")
	if err != nil {
		return err
	}
	code, err := c.prompt("Promo code")
	if err != nil {
		return err
	}
	promo, err := c.promos.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	discounted, err := c.promos.Apply(ctx, rentalID, promo.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Promo %s applied to rental %d, discounted total %.2f\n",
		promo.Code, rentalID, discounted)
	return nil
}

func (c *Console) branchStats(ctx context.Context) error {
	stats, err := c.branches.Stats(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BRANCH\tRENTALS\tREVENUE")
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%d\t%.2f\n", s.BranchName, s.RentalCount, s.TotalRevenue)
	}
	return w.Flush()
}

func (c *Console) createStaffUser(ctx context.Context) error {
	username, err := c.prompt("Username")
	if err != nil {
		return err
	}
	password, err := c.prompt("Password")
	if err != nil {
		return err
	}
	fullName, err := c.prompt("Full name")
	if err != nil {
		return err
	}
	email, err := c.prompt("Email")
	if err != nil {
		return err
	}
	user, err := c.auth.CreateUser(ctx, username, password, fullName, email)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Staff user %d (%s) created\n", user.ID, user.Username)
	return nil
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprintf(c.out, "%s: ", label)
	return c.readLine()
}

func (c *Console) promptID(label string) (int32, error) {
	raw, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.Validationf("invalid number %q", raw)
	}
	return int32(id), nil
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
