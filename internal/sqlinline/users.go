package sqlinline

const QSelectUserByEmail = `--sql 5e2a8d63-1b9c-4f07-b6e4-8c3f2a1d9e75
select id, email, name, created_at, updated_at
from users
where email = $1::text
limit 1;
`

const QSelectUserByID = `--sql 1239018e-4f5f-46a0-8f0d-81b2a3a5f0f8
select id, email, name, created_at, updated_at
from users
where id = $1::uuid
limit 1;
`

const QUpsertUserByEmail = `--sql 7c0b4e19-8a3d-4e62-9f1b-5d6a2c8e0f43
insert into users (id, email, name, created_at, updated_at)
values (gen_random_uuid(), $1::text, $2::text, now(), now())
on conflict (email) do update set
    name = case when excluded.name = '' then users.name else excluded.name end,
    updated_at = now()
returning id, email, name, created_at, updated_at;
`
