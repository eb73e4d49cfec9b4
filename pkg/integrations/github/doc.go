// Package github provides an HTTP client for the GitHub API.
//
// # Overview
//
// This package fetches repository data from GitHub (https://api.github.com)
// so the projects section can show star counts next to each project.
//
// # Usage
//
//	client := github.NewClient(token, c, 24*time.Hour)
//
//	stars, err := client.Stars(ctx, "charmbracelet", "bubbletea", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Stars:", stars)
//
// [Client.StarsForProjects] resolves many project URLs concurrently and never
// fails as a whole: repositories that cannot be fetched are simply missing
// from the result.
//
// # Authentication
//
// A GitHub personal access token is optional but recommended to avoid rate
// limits. Without a token, the client is limited to 60 requests/hour.
// With a token, the limit is 5000 requests/hour.
package github
