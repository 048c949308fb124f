// Command portalctl is a small client for the portal API. It keeps a
// local session file so `me` works across invocations without hitting
// the server.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/session"
)

const sessionTTL = 24 * time.Hour

func main() {
	serverURL := flag.String("server", "http://localhost:5000", "portal base URL")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	mgr := session.NewManager(session.NewFileStore(session.DefaultPath()), sessionTTL)

	var err error
	switch flag.Arg(0) {
	case "login":
		err = login(*serverURL, mgr, flag.Arg(1), flag.Arg(2))
	case "me":
		err = me(mgr)
	case "logout":
		err = mgr.Destroy()
		if err == nil {
			fmt.Println("Logged out.")
		}
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", flag.Arg(0), err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: portalctl [-server URL] login <email> <password> | me | logout")
}

func login(serverURL string, mgr *session.Manager, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("email and password are required")
	}

	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Post(serverURL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &e) == nil && e.Message != "" {
			return fmt.Errorf("%s", e.Message)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}

	var out struct {
		User *domain.PublicUser `json:"user"`
	}
	if err := json.Unmarshal(data, &out); err != nil || out.User == nil {
		return fmt.Errorf("unexpected login response")
	}

	if _, err := mgr.Issue(out.User); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s <%s>\n", out.User.Name, out.User.Email)
	return nil
}

func me(mgr *session.Manager) error {
	user, err := mgr.Read()
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(user)
}
