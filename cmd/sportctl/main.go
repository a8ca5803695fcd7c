// sportctl is the command-line front end to the booking service. It only
// prompts, parses and renders; all booking rules live server-side.
package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"sportcenter/internal/booking"
	"sportcenter/internal/customer"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "sportctl",
	Short: "Sports center booking client",
}

func client() *apiClient {
	return newAPIClient(serverURL)
}

var registerCmd = func() *cobra.Command {
	var req customer.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			var created customer.Customer
			if err := client().post("/customers", req, &created); err != nil {
				return err
			}
			fmt.Printf("Customer '%s' registered successfully!\n", created.Name)
			fmt.Printf("Customer ID: %d\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "customer name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number (10 digits)")
	cmd.Flags().StringVar(&req.Address, "address", "", "address (letters and numbers)")
	cmd.Flags().IntVar(&req.Age, "age", 0, "age")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("address")
	return cmd
}()

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "List registered customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		var list []customer.Customer
		if err := client().get("/customers", &list); err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No customers are registered.")
			return nil
		}
		for _, c := range list {
			fmt.Printf("ID: %d, Name: %s, Age: %d, Email: %s, Phone: %s\n",
				c.ID, c.Name, c.Age, c.Email, c.Phone)
		}
		return nil
	},
}

var searchCmd = func() *cobra.Command {
	var name string
	var id int
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search a customer by name or id",
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			switch {
			case name != "":
				path = "/search?name=" + url.QueryEscape(name)
			case id > 0:
				path = fmt.Sprintf("/search?id=%d", id)
			default:
				return fmt.Errorf("either --name or --id is required")
			}

			var detail booking.CustomerDetail
			if err := client().get(path, &detail); err != nil {
				return err
			}

			c := detail.Customer
			fmt.Println("Customer Found:")
			fmt.Printf("ID: %d\nName: %s\nAge: %d\nEmail: %s\nPhone: %s\nAddress: %s\n",
				c.ID, c.Name, c.Age, c.Email, c.Phone, c.Address)
			fmt.Println("Bookings:")
			if len(detail.Bookings) == 0 {
				fmt.Println("  No bookings found.")
				return nil
			}
			for _, b := range detail.Bookings {
				fmt.Printf("  - %s: %s (Booking ID: %d)\n", b.Sport, b.TimeRange, b.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "customer name")
	cmd.Flags().IntVar(&id, "id", 0, "customer id")
	return cmd
}()

var deleteCmd = func() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a customer and all their bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp struct {
				RemovedBookings int `json:"removed_bookings"`
			}
			if err := client().del("/customers/"+url.PathEscape(name), &resp); err != nil {
				return err
			}
			fmt.Printf("Customer '%s' and all their %d booking(s) have been permanently deleted.\n",
				name, resp.RemovedBookings)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "customer name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}()

var bookCmd = func() *cobra.Command {
	var req booking.BookRequest
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a time slot for an existing customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			var conf booking.Confirmation
			if err := client().post("/bookings", req, &conf); err != nil {
				return err
			}
			fmt.Printf("Slot booked successfully for customer '%s'!\n", req.CustomerName)
			fmt.Printf("Booking ID: %d\n", conf.Booking.ID)
			fmt.Printf("Sport: %s\n", conf.SportName)
			fmt.Printf("Time Slot: %s\n", conf.TimeRange)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.CustomerName, "name", "", "customer name")
	cmd.Flags().IntVar(&req.Sport, "sport", 0, "sport number (1-6)")
	cmd.Flags().IntVar(&req.TimeSlot, "slot", 0, "time slot (1-6)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("sport")
	_ = cmd.MarkFlagRequired("slot")
	return cmd
}()

var cancelCmd = func() *cobra.Command {
	var name string
	var bookingID int
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel one booking; customer details remain in the system",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/bookings/%d/cancel", bookingID)
			if err := client().post(path, booking.CancelRequest{CustomerName: name}, nil); err != nil {
				return err
			}
			fmt.Printf("Booking %d canceled for customer '%s'.\n", bookingID, name)
			fmt.Println("Customer details remain in the system.")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "customer name")
	cmd.Flags().IntVar(&bookingID, "booking", 0, "booking id to cancel")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("booking")
	return cmd
}()

var bookingsCmd = func() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List a customer's bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			var views []booking.View
			if err := client().get("/customers/"+url.PathEscape(name)+"/bookings", &views); err != nil {
				return err
			}
			if len(views) == 0 {
				fmt.Printf("No bookings found for customer '%s'.\n", name)
				return nil
			}
			fmt.Printf("Bookings for customer '%s':\n", name)
			for i, b := range views {
				fmt.Printf("%d. %s: %s (Booking ID: %d)\n", i+1, b.Sport, b.TimeRange, b.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "customer name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}()

var slotsCmd = func() *cobra.Command {
	var sportNum int
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Show slot availability (2 hours each, 8 AM to 8 PM)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var sports []booking.SportAvailability
			if sportNum > 0 {
				var one booking.SportAvailability
				if err := client().get(fmt.Sprintf("/sports/%d/slots", sportNum), &one); err != nil {
					return err
				}
				sports = []booking.SportAvailability{one}
			} else if err := client().get("/sports", &sports); err != nil {
				return err
			}

			for _, sp := range sports {
				fmt.Printf("%d. %s:\n", sp.Sport, sp.Name)
				for _, slot := range sp.Slots {
					if slot.FullyBooked {
						fmt.Printf(" %d) %s (Fully booked)\n", slot.Slot, slot.TimeRange)
					} else {
						fmt.Printf(" %d) %s (%d slots available)\n", slot.Slot, slot.TimeRange, slot.Available)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&sportNum, "sport", 0, "limit to one sport (1-6)")
	return cmd
}()

var occupancyCmd = &cobra.Command{
	Use:   "occupancy",
	Short: "Show booked slots grouped by sport",
	RunE: func(cmd *cobra.Command, args []string) error {
		var summary []booking.SportOccupancy
		if err := client().get("/occupancy", &summary); err != nil {
			return err
		}
		if len(summary) == 0 {
			fmt.Println("No slots have been booked.")
			return nil
		}
		fmt.Println("Booked Slots:")
		for _, sp := range summary {
			fmt.Printf("%s:\n", sp.Sport)
			for _, slot := range sp.Slots {
				fmt.Printf("  Time Slot %s: %d booking(s)\n", slot.TimeRange, slot.Bookings)
			}
		}
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "booking service URL")
	rootCmd.AddCommand(
		registerCmd,
		customersCmd,
		searchCmd,
		deleteCmd,
		bookCmd,
		cancelCmd,
		bookingsCmd,
		slotsCmd,
		occupancyCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
