/*
Package ingest feeds blocks into an authenticated list.

A block source is either a byte stream, cut into fixed size blocks
(the last one may be shorter), or a kv.DB holding blocks under
BlockKey(index). Every block is handed to an Inserter together with
its index; the list then stores it under the digest of the index.

A source failure aborts the ingestion only: blocks inserted before
the failure stay in the list and remain provable.
*/
package ingest
