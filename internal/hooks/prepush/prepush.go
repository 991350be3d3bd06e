package prepush

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/breml/conventional-githooks/internal/hooks/commitmsg"
)

const (
	minRefFields = 4

	gitZeroHash = "0000000000000000000000000000000000000000"
)

// parseArgs parses command-line arguments and returns base and head refs.
// Returns empty strings if no flags are provided (stdin mode).
func parseArgs(config *Config, args []string) (baseRef string, headRef string, err error) {
	if len(args) == 0 {
		return "", "", nil
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var base, head string
	fs.StringVar(&base, "base-ref", "", "Base ref or SHA to compare from")
	fs.StringVar(&head, "head-ref", "", "Head ref or SHA to compare to")

	err = fs.Parse(args[1:])
	if err != nil {
		return "", "", fmt.Errorf("failed to parse arguments: %w", err)
	}

	if fs.NArg() > 0 {
		return "", "", fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if base == "" && head == "" {
		return "", "", nil
	}

	if base != "" && head == "" {
		return "", "", errors.New("--head-ref is required when using --base-ref")
	}

	if base == "" {
		base = config.Settings.MainRef
	}

	return base, head, nil
}

// resolveRefOrSHA resolves a ref name or SHA to a commit object.
// Tries as revision first (branches, tags, HEAD, HEAD~1), then as SHA.
func resolveRefOrSHA(repo *git.Repository, refOrSHA string) (*object.Commit, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(refOrSHA))
	if err == nil {
		commit, commitErr := repo.CommitObject(*hash)
		if commitErr == nil {
			return commit, nil
		}
	}

	commit, err := repo.CommitObject(plumbing.NewHash(refOrSHA))
	if err == nil {
		return commit, nil
	}

	return nil, fmt.Errorf("failed to resolve '%s' as ref or SHA", refOrSHA)
}

// pushedRef is a single line of git pre-push hook input.
type pushedRef struct {
	localRef  string
	localOID  string
	remoteOID string
}

// parsePushedRefs reads the lines git passes to a pre-push hook on stdin.
// Blank and malformed lines are ignored.
func parsePushedRefs(stdin io.Reader) ([]pushedRef, error) {
	var refs []pushedRef

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < minRefFields {
			continue
		}

		refs = append(refs, pushedRef{
			localRef:  fields[0],
			localOID:  fields[1],
			remoteOID: fields[3],
		})
	}

	err := scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}

	return refs, nil
}

// runStdinMode validates the commits of every ref git is about to push.
func runStdinMode(config *Config, repo *git.Repository, stdin io.Reader) error {
	refs, err := parsePushedRefs(stdin)
	if err != nil {
		return err
	}

	for _, ref := range refs {
		// Deleted ref, nothing to check
		if ref.localOID == gitZeroHash {
			continue
		}

		base := ref.remoteOID
		if base == gitZeroHash {
			// New branch, examine all commits since the main branch
			mainCommit, resolveErr := resolveRefOrSHA(repo, config.Settings.MainRef)
			if resolveErr != nil {
				return fmt.Errorf("failed to resolve main ref: %w", resolveErr)
			}

			base = mainCommit.Hash.String()
		}

		commits, rangeErr := commitsInRange(repo, plumbing.NewHash(base), plumbing.NewHash(ref.localOID))
		if rangeErr != nil {
			return fmt.Errorf("failed to get commits: %w", rangeErr)
		}

		checkErr := validateCommits(config, commits, ref.localRef)
		if checkErr != nil {
			return checkErr
		}
	}

	return nil
}

// runArgsMode validates commits between base and head refs/SHAs.
func runArgsMode(config *Config, repo *git.Repository, baseRef string, headRef string) error {
	baseCommit, err := resolveRefOrSHA(repo, baseRef)
	if err != nil {
		if baseRef == config.Settings.MainRef {
			return fmt.Errorf("%w (hint: use --base-ref to specify a different base)", err)
		}

		return err
	}

	headCommit, err := resolveRefOrSHA(repo, headRef)
	if err != nil {
		return err
	}

	commits, err := commitsInRange(repo, baseCommit.Hash, headCommit.Hash)
	if err != nil {
		return fmt.Errorf("failed to get commits: %w", err)
	}

	refName := fmt.Sprintf("%s..%s", baseRef, headRef)

	return validateCommits(config, commits, refName)
}

// validateCommits checks the header of every commit against the commit
// message grammar. Depending on fail_fast, it stops at the first invalid
// commit or reports all of them.
func validateCommits(config *Config, commits []*object.Commit, refName string) error {
	var failed []*object.Commit

	for _, commit := range commits {
		if config.Settings.skipMergeCommits() && commit.NumParents() > 1 {
			continue
		}

		if config.Settings.shouldSkipAuthor(commit.Author.Name, commit.Author.Email) {
			continue
		}

		err := commitmsg.Validate(commit.Message)
		if err == nil {
			continue
		}

		failed = append(failed, commit)
		if config.Settings.FailFast {
			break
		}
	}

	if len(failed) == 0 {
		return nil
	}

	return &RangeError{Ref: refName, Commits: failed}
}

// Run reads git pre-push hook input from stdin and validates commit messages.
// If args contains CLI flags, it validates the specified commit range instead.
func Run(stdin io.Reader, args []string) error {
	config, err := LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	baseRef, headRef, err := parseArgs(config, args)
	if err != nil {
		return err
	}

	repo, err := git.PlainOpen(".")
	if err != nil {
		return fmt.Errorf("failed to open git repository: %w", err)
	}

	if headRef != "" {
		return runArgsMode(config, repo, baseRef, headRef)
	}

	return runStdinMode(config, repo, stdin)
}

// commitsInRange returns all commits reachable from head but not from base,
// newest first.
func commitsInRange(repo *git.Repository, base plumbing.Hash, head plumbing.Hash) ([]*object.Commit, error) {
	headCommit, err := repo.CommitObject(head)
	if err != nil {
		return nil, fmt.Errorf("failed to get head commit %s: %w", head, err)
	}

	baseCommit, err := repo.CommitObject(base)
	if err != nil {
		return nil, fmt.Errorf("failed to get base commit %s: %w", base, err)
	}

	excluded := make(map[plumbing.Hash]bool)
	err = object.NewCommitIterCTime(baseCommit, nil, nil).ForEach(func(c *object.Commit) error {
		excluded[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate base commits: %w", err)
	}

	var commits []*object.Commit
	err = object.NewCommitIterCTime(headCommit, nil, nil).ForEach(func(c *object.Commit) error {
		if !excluded[c.Hash] {
			commits = append(commits, c)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate head commits: %w", err)
	}

	return commits, nil
}
