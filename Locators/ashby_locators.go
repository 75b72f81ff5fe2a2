package locators

/**
 * Ashby (jobs.ashbyhq.com) application form locators. Ashby renders ARIA
 * combobox patterns and button-pair Yes/No toggles whose only selected
 * signal is client-side styling.
 */

// Identity fields
const ASHBY_NAME = "input[name='_systemfield_name'], input[id*='_systemfield_name']"
const ASHBY_EMAIL = "input[name='_systemfield_email'], input[type='email']"
const ASHBY_PHONE = "input[name='_systemfield_phone'], input[type='tel']"

// Link fields resolve by label text rather than attribute; these are the
// attribute fallbacks.
const ASHBY_LINKEDIN = "input[name*='linkedin' i], input[id*='linkedin' i]"
const ASHBY_WEBSITE = "input[name*='website' i], input[id*='website' i]"

// ARIA combobox option list
const ASHBY_COMBOBOX_INPUT = "input[role='combobox'], [role='combobox'] input"
const ASHBY_COMBOBOX_OPTIONS = "[role='listbox'] [role='option'], ul[id*='listbox'] li"

// Résumé upload
const ASHBY_RESUME_INPUT = "input#_systemfield_resume[type='file'], input[type='file']"
