package client

import (
	"context"
	"net/http"

	"github.com/RishavSharma21/Song-PlayList-Manager/internal/user"
)

func (c *Client) Register(ctx context.Context, name, username, password, email string) (user.AuthResponse, error) {
	body := map[string]string{
		"name":     name,
		"username": username,
		"password": password,
		"email":    email,
	}
	var resp user.AuthResponse
	if err := c.do(ctx, http.MethodPost, c.userURL+"/auth/register", "", body, &resp); err != nil {
		return user.AuthResponse{}, err
	}
	return resp, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (user.AuthResponse, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var resp user.AuthResponse
	if err := c.do(ctx, http.MethodPost, c.userURL+"/auth/login", "", body, &resp); err != nil {
		return user.AuthResponse{}, err
	}
	return resp, nil
}
