// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const remotesTable = "remotes"

var remoteColumns = []string{"name", "url", "port", "username", "password"}

func selectRemotesQuery() sq.SelectBuilder {
	return sq.Select(remoteColumns...).From(remotesTable).OrderBy("name")
}

func selectRemoteQuery(name string) sq.SelectBuilder {
	return sq.Select(remoteColumns...).From(remotesTable).Where(sq.Eq{"name": name})
}

func insertRemoteQuery(name, url string, port int, username, password string) sq.InsertBuilder {
	return sq.Insert(remotesTable).Columns(remoteColumns...).Values(name, url, port, username, password)
}

func deleteRemoteQuery(name string) sq.DeleteBuilder {
	return sq.Delete(remotesTable).Where(sq.Eq{"name": name})
}
