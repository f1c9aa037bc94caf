/*
Package forumsdk is a client for the forum API and holds the JSON types the
server writes.

An SDKClient covers the public endpoints and logs in:

	client := forumsdk.NewSDKClient("http://localhost:8080")

	threads, err := client.ListThreads(ctx)

	session, err := client.Login(ctx, "alice", "correct-horse")

A Session covers everything that needs an account. Moderation calls fail
with a 403 APIError unless the account holds the moderator or super role:

	thread, err := session.CreateThread(ctx, forumsdk.CreateThreadRequest{
		Title: "Hello there",
		Body:  "First post on the new forum",
		Tags:  forumsdk.TagList{"intro"},
	})

	queue, err := session.ListFlagged(ctx)

Errors returned for non-2xx responses are *APIError values. The IsNotFound,
IsForbidden and related helpers classify them by status.
*/
package forumsdk
