/*
Package garagesdk holds the wire types of the garage API and a small client
for it.

# Client vs Session

Client covers the public endpoints: health probes, registration and login.
A successful login returns a Session that carries the owner's access token:

	client := garagesdk.NewClient("https://garage.example")

	if _, err := client.Register(ctx, garagesdk.RegisterRequest{...}); err != nil {
		return err
	}

	session, err := client.Login(ctx, "owner@example.com", "password", "")
	if errors.Is(err, garagesdk.ErrMFARequired) {
		session, err = client.Login(ctx, "owner@example.com", "password", totpCode)
	}

	vehicles, err := session.ListVehicles(ctx)

	// Hand the returned QR image to the workshop doing the service.
	qr, err := session.IssueMaintenanceQR(ctx, vehicles[0].ID)

# Errors

Every non-2xx JSON response decodes into an *APIError. Predefined errors
compare by code, so errors.Is works against them regardless of the
description the server sent.

Handlers use the same values to write responses:

	garagesdk.ErrVehicleNotFound.WriteError(w)
*/
package garagesdk
