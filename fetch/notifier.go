package fetch

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"click4news/types"
)

// NotifyVote posts a vote record and forgets about it. The request runs
// on its own goroutine to completion or failure, independent of whatever
// the UI does next; failures are logged and swallowed.
func (c *Client) NotifyVote(req types.VoteRequest) {
	c.postAndForget(c.VoteURL, req, "vote")
}

// NotifySubmission posts a new user-generated article, fire-and-forget.
func (c *Client) NotifySubmission(sub types.Submission) {
	c.postAndForget(c.SubmissionURL, sub, "submission")
}

// WaitForNotifications blocks until all best-effort posts issued so far
// have finished. Test hook only; production callers never wait.
func (c *Client) WaitForNotifications() {
	c.inflight.Wait()
}

func (c *Client) postAndForget(url string, payload interface{}, what string) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshaling %s: %v", what, err)
		return
	}

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		resp, err := c.HTTP.Post(url, "application/json", bytes.NewBuffer(body))
		if err != nil {
			log.Printf("Failed to send %s: %v", what, err)
			return
		}
		defer resp.Body.Close()

		// Response body is unused; drain it so the connection is reusable.
		io.Copy(io.Discard, resp.Body)
		if resp.StatusCode >= http.StatusBadRequest {
			log.Printf("%s endpoint returned status: %s", what, resp.Status)
		}
	}()
}
