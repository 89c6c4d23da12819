package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/confirm"
	"storefront/internal/gateway"
	"storefront/internal/localstore"
	"storefront/internal/model"
	"storefront/internal/session"
)

const usage = `usage: storefront <command> [arguments]

commands:
  product <id>                     show a product with reviews and related items
  cart                             show the cart and total
  cart add <product-id> [qty]      add a product to the cart
  cart set <product-id> <qty>      change a line quantity (0 removes)
  cart rm <product-id>             remove a line
  cart clear                       empty the cart
  checkout -address <a> -phone <p> place an order (cash on delivery)
  review <product-id> -rating <n> -comment <text>
  login <token>                    store an auth token
  logout                           clear the stored session
  whoami                           show the signed-in user
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles the wired services for command dispatch.
type app struct {
	client   *gateway.Client
	sessions *session.Store
	engine   *cart.Engine
	checkout *checkout.Service
	catalog  *catalog.Service
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx := context.Background()

	client := gateway.New(cfg.API.BaseURL, time.Duration(cfg.API.Timeout)*time.Second, logger)
	store := localstore.Open(cfg.Cart.File, logger)
	sessions := session.OpenStore(cfg.Session.File, logger)
	confirmer := terminalConfirmer{}

	engine := cart.NewEngine(client, store, confirmer, cfg.API.PlaceholderImage, logger)

	a := &app{
		client:   client,
		sessions: sessions,
		engine:   engine,
		checkout: checkout.NewService(client, engine, logger),
		catalog:  catalog.NewService(client, logger),
	}

	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Print(usage)
		return nil
	}

	switch args[0] {
	case "product":
		return a.showProduct(ctx, args[1:])
	case "cart":
		return a.cartCommand(ctx, args[1:])
	case "checkout":
		return a.checkoutCommand(ctx, args[1:])
	case "review":
		return a.reviewCommand(ctx, args[1:])
	case "login":
		return a.login(args[1:])
	case "logout":
		return a.logout(confirmer)
	case "whoami":
		return a.whoami()
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *app) showProduct(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: storefront product <id>")
	}

	detail, err := a.catalog.LoadDetail(ctx, a.sessions.Current(), args[0])
	if err != nil {
		return err
	}

	p := detail.Product
	fmt.Printf("%s\n", p.Name)
	fmt.Printf("  price: %.0f\n", p.Price)
	if p.Description != "" {
		fmt.Printf("  %s\n", p.Description)
	}
	fmt.Printf("  rating: %.1f (%d reviews)\n", p.Rating, p.NumReviews)

	if len(detail.Reviews) > 0 {
		fmt.Println("reviews:")
		for _, r := range detail.Reviews {
			name := "anonymous"
			if r.User != nil && r.User.Name != "" {
				name = r.User.Name
			}
			fmt.Printf("  [%d/5] %s: %s\n", r.Rating, name, r.Comment)
		}
	}
	if detail.CanReview {
		fmt.Println("you can review this product")
	}
	if len(detail.Related) > 0 {
		fmt.Println("related:")
		for _, rp := range detail.Related {
			fmt.Printf("  %s  %s (%.0f)\n", rp.ID, rp.Name, rp.Price)
		}
	}
	return nil
}

func (a *app) cartCommand(ctx context.Context, args []string) error {
	sess := a.sessions.Current()

	if len(args) == 0 {
		return a.showCart(ctx)
	}

	switch args[0] {
	case "add":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("usage: storefront cart add <product-id> [qty]")
		}
		qty := 1
		if len(args) == 3 {
			q, err := strconv.Atoi(args[2])
			if err != nil || q < 1 {
				return fmt.Errorf("invalid quantity %q", args[2])
			}
			qty = q
		}
		product, err := a.client.GetProduct(ctx, args[1])
		if err != nil {
			return err
		}
		if err := a.engine.AddItem(ctx, sess, *product, qty); err != nil {
			return err
		}
		fmt.Println("added to cart")
		return a.showCart(ctx)

	case "set":
		if len(args) != 3 {
			return fmt.Errorf("usage: storefront cart set <product-id> <qty>")
		}
		qty, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[2])
		}
		if err := a.engine.SetQuantity(ctx, sess, args[1], qty); err != nil {
			return err
		}
		return a.showCart(ctx)

	case "rm":
		if len(args) != 2 {
			return fmt.Errorf("usage: storefront cart rm <product-id>")
		}
		if err := a.engine.RemoveItem(ctx, sess, args[1]); err != nil {
			return err
		}
		return a.showCart(ctx)

	case "clear":
		if err := a.engine.ClearCart(ctx, sess); err != nil {
			return err
		}
		return a.showCart(ctx)

	default:
		return fmt.Errorf("unknown cart command %q", args[0])
	}
}

func (a *app) showCart(ctx context.Context) error {
	sess := a.sessions.Current()
	lines := a.engine.GetCart(ctx, sess)
	if len(lines) == 0 {
		fmt.Println("cart is empty")
		return nil
	}
	for _, line := range lines {
		fmt.Printf("%s  %s  %d x %.0f = %.0f\n",
			line.ID, line.Name, line.Quantity, line.UnitPrice,
			line.UnitPrice*float64(line.Quantity))
	}
	fmt.Printf("total: %.0f\n", cart.ComputeTotal(lines))
	return nil
}

func (a *app) checkoutCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	address := fs.String("address", "", "delivery address")
	phone := fs.String("phone", "", "contact phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess := a.sessions.Current()
	lines := a.engine.GetCart(ctx, sess)

	order, err := a.checkout.PlaceOrder(ctx, sess, lines, *address, *phone)
	if err != nil {
		return err
	}

	fmt.Printf("order placed: %s (%s)\n", order.ID, order.PaymentMethod)
	return nil
}

func (a *app) reviewCommand(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: storefront review <product-id> -rating <n> -comment <text>")
	}
	productID := args[0]

	fs := flag.NewFlagSet("review", flag.ContinueOnError)
	rating := fs.Int("rating", 0, "rating from 1 to 5")
	comment := fs.String("comment", "", "review text")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	review, err := a.catalog.SubmitReview(ctx, a.sessions.Current(), productID,
		&model.ReviewRequest{Rating: *rating, Comment: *comment})
	if err != nil {
		return err
	}

	fmt.Printf("review submitted: [%d/5] %s\n", review.Rating, review.Comment)
	return nil
}

func (a *app) login(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: storefront login <token>")
	}
	if err := a.sessions.SignIn(args[0]); err != nil {
		return err
	}
	return a.whoami()
}

func (a *app) logout(confirmer confirm.Confirmer) error {
	done, err := a.sessions.SignOut(confirmer)
	if err != nil {
		return err
	}
	if done {
		fmt.Println("signed out")
	}
	return nil
}

func (a *app) whoami() error {
	sess := a.sessions.Current()
	if sess.User == nil {
		if sess.Authenticated() {
			fmt.Println("signed in (opaque token)")
		} else {
			fmt.Println("not signed in")
		}
		return nil
	}
	state := "signed in"
	if !sess.Authenticated() {
		state = "session expired"
	}
	fmt.Printf("%s: %s <%s> (%s)\n", state, sess.User.Name, sess.User.Email, sess.User.ID)
	return nil
}

// terminalConfirmer asks for approval on the terminal.
type terminalConfirmer struct{}

func (terminalConfirmer) Confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
