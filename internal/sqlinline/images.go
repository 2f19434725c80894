package sqlinline

// QInsertImage appends one generation record. There is no conflict clause:
// identical inputs produce distinct rows.
const QInsertImage = `--sql 3b7e9c14-2f6a-4d1e-8c53-9a0b1e7d4f22
insert into images (id, user_id, prompt, image_url, style, size, created_at)
values ($1::uuid, $2::uuid, $3::text, $4::text, $5::text, $6::text, now())
returning created_at;
`

// QSelectImagesByUser lists a user's records newest first. UUIDv7 ids break
// ties between rows written in the same transaction timestamp.
const QSelectImagesByUser = `--sql 9d41f0a7-6c2e-4b8f-a315-27e8c5d0b9e6
select id, user_id, prompt, image_url, style, size, created_at
from images
where user_id = $1::uuid
order by created_at desc, id desc;
`
