//go:build unix

package sys

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"nixclean/internal/clean"
)

const passwdPath = "/etc/passwd"

// Users enumerates all local accounts from the passwd database. The standard
// library offers no account enumeration, so this reads the file directly.
// Malformed lines are skipped; only a missing or unreadable database is an
// error.
func (*OSSystem) Users() ([]clean.User, error) {
	f, err := os.Open(passwdPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", passwdPath, err)
	}
	defer f.Close()

	var users []clean.User
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// name:password:uid:gid:gecos:home:shell
		fields := strings.Split(line, ":")
		if len(fields) < 7 {
			continue
		}
		uid, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			continue
		}
		users = append(users, clean.User{
			UID:  uint32(uid),
			Name: fields[0],
			Home: fields[5],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", passwdPath, err)
	}
	return users, nil
}
